package meta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const indentUnit = "  "

// Compact-array rule: arrays up to this many elements, all strings shorter
// than compactMaxStringLen, are emitted on a single line.
const (
	compactMaxElems     = 5
	compactMaxStringLen = 50
)

// node is an order-preserving parsed JSON value. encoding/json maps would
// scramble object keys, so records are re-read through the token stream.
type node struct {
	kind  byte // 'o' object, 'a' array, 's' string, 'n' number, 'b' bool, 'z' null
	str   string
	num   json.Number
	boolV bool
	keys  []string
	vals  []*node
	elems []*node
}

func parseValue(dec *json.Decoder) (*node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseFrom(dec, tok)
}

func parseFrom(dec *json.Decoder, tok json.Token) (*node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n := &node{kind: 'o'}
			for dec.More() {
				kTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", kTok)
				}
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				n.keys = append(n.keys, key)
				n.vals = append(n.vals, val)
			}
			// Consume closing '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		case '[':
			n := &node{kind: 'a'}
			for dec.More() {
				el, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				n.elems = append(n.elems, el)
			}
			// Consume closing ']'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return &node{kind: 's', str: t}, nil
	case json.Number:
		return &node{kind: 'n', num: t}, nil
	case bool:
		return &node{kind: 'b', boolV: t}, nil
	case nil:
		return &node{kind: 'z'}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// compactable reports whether the array satisfies the single-line rule.
func (n *node) compactable() bool {
	if n.kind != 'a' || len(n.elems) == 0 || len(n.elems) > compactMaxElems {
		return false
	}
	for _, e := range n.elems {
		if e.kind != 's' || utf8.RuneCountInString(e.str) >= compactMaxStringLen {
			return false
		}
	}
	return true
}

func writeNode(buf *bytes.Buffer, n *node, depth int) {
	switch n.kind {
	case 'o':
		if len(n.keys) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{\n")
		for i, k := range n.keys {
			buf.WriteString(strings.Repeat(indentUnit, depth+1))
			buf.WriteString(encodeString(k))
			buf.WriteString(": ")
			writeNode(buf, n.vals[i], depth+1)
			if i < len(n.keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(indentUnit, depth))
		buf.WriteByte('}')
	case 'a':
		if len(n.elems) == 0 {
			buf.WriteString("[]")
			return
		}
		if n.compactable() {
			buf.WriteByte('[')
			for i, e := range n.elems {
				if i > 0 {
					buf.WriteString(", ")
				}
				buf.WriteString(encodeString(e.str))
			}
			buf.WriteByte(']')
			return
		}
		buf.WriteString("[\n")
		for i, e := range n.elems {
			buf.WriteString(strings.Repeat(indentUnit, depth+1))
			writeNode(buf, e, depth+1)
			if i < len(n.elems)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(indentUnit, depth))
		buf.WriteByte(']')
	case 's':
		buf.WriteString(encodeString(n.str))
	case 'n':
		buf.WriteString(n.num.String())
	case 'b':
		if n.boolV {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case 'z':
		buf.WriteString("null")
	}
}

func encodeString(s string) string {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimRight(sb.String(), "\n")
}

// EncodeIndex serializes the records as a JSON array with 2-space
// indentation and the compact-array rule, ending with a single newline.
func EncodeIndex(records []json.RawMessage) ([]byte, error) {
	if len(records) == 0 {
		return []byte("[]\n"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, rec := range records {
		dec := json.NewDecoder(bytes.NewReader(rec))
		dec.UseNumber()
		n, err := parseValue(dec)
		if err != nil {
			return nil, fmt.Errorf("re-encoding record %d: %w", i, err)
		}
		buf.WriteString(indentUnit)
		writeNode(&buf, n, 1)
		if i < len(records)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}
