package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Section is one named list of entries: a workout day with its exercises, a
// study strategy category, or a tip category.
type Section struct {
	Name  string
	Items []string
}

// Sections is an ordered name -> entries mapping. It encodes as a JSON object
// whose member order is the slice order.
type Sections []Section

// Get returns the entries for name.
func (s Sections) Get(name string) ([]string, bool) {
	for _, sec := range s {
		if sec.Name == name {
			return sec.Items, true
		}
	}
	return nil, false
}

// Names returns the section names in order.
func (s Sections) Names() []string {
	names := make([]string, len(s))
	for i, sec := range s {
		names[i] = sec.Name
	}
	return names
}

func (s Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		items := sec.Items
		if items == nil {
			items = []string{}
		}
		if err := writeMember(&buf, sec.Name, items); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object while keeping member order.
func (s *Sections) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("sections: expected object, got %v", tok)
	}
	out := Sections{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("sections: expected member name, got %v", tok)
		}
		var items []string
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("sections: decoding %q: %w", name, err)
		}
		if items == nil {
			items = []string{}
		}
		out = append(out, Section{Name: name, Items: items})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// writeMember writes `"key":value` without HTML escaping, so names such as
// "Rest & Recovery" stay readable in exported files.
func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := marshalPlain(key)
	if err != nil {
		return err
	}
	v, err := marshalPlain(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

func marshalPlain(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
