package habit

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeDocument parses a persisted document and repairs it through
// Normalize. It never fails: corrupt bytes degrade to the default
// document, the session stays usable and the next save overwrites the
// corruption.
func DecodeDocument(data []byte) *Document {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = nil
	}
	return Normalize(raw)
}

// EncodeDocument renders the canonical persisted form: compact JSON with
// day keys in sorted order, so identical documents always serialize to
// identical bytes.
func EncodeDocument(doc *Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("could not encode document: %w", err)
	}
	return data, nil
}

// EncodeDocumentIndent is EncodeDocument with an indented layout, for
// files meant to be read or hand edited.
func EncodeDocumentIndent(doc *Document) ([]byte, error) {
	data, err := EncodeDocument(doc)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("could not indent document: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
