package document

import (
	"path/filepath"
	"strings"

	"github.com/wippyai/treebridge/errors"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatCBOR}

// ParseFormat resolves a format name, case-insensitively. "yml" is accepted
// for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return "", errors.InvalidInput(errors.PhaseDecode, "unknown format "+name)
}

// DetectFormat picks a format from a file extension.
func DetectFormat(filename string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return "", false
	}
	f, err := ParseFormat(ext)
	return f, err == nil
}

// Decode parses data in the given format.
func Decode(f Format, data []byte) (any, error) {
	switch f {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatCBOR:
		return decodeCBOR(data)
	}
	return nil, errors.InvalidInput(errors.PhaseDecode, "unknown format "+string(f))
}
