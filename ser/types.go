package ser

// Char is a single Unicode character. A plain rune is an int32 and
// serializes as one; Char serializes with SerializeChar.
type Char rune

// Unit is the value with no data.
type Unit struct{}

func (c Char) Serialize(s Serializer) error {
	return s.SerializeChar(rune(c))
}

func (Unit) Serialize(s Serializer) error {
	return s.SerializeUnit()
}
