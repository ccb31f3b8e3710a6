package treebridge

import (
	"github.com/wippyai/treebridge/convert"
	"github.com/wippyai/treebridge/document"
	"github.com/wippyai/treebridge/tree"
)

// Convert converts v into a tree value. See convert.Convert.
func Convert(v any) (tree.Value, error) {
	return convert.Convert(v)
}

// Decode parses a document and converts it into a tree value.
func Decode(f document.Format, data []byte) (tree.Value, error) {
	doc, err := document.Decode(f, data)
	if err != nil {
		return nil, err
	}
	return convert.Convert(doc)
}
