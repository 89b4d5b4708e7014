package models

import (
	"bytes"
	"encoding/json"
)

// Product is one parsed detail page. It is written out as soon as it is built.
type Product struct {
	URL             string
	Title           string
	ImageSrc        string
	Price           string
	Characteristics *Characteristics
}

// Characteristics maps specification labels to values. Setting an existing
// label replaces its value but keeps the label's original position.
// A nil *Characteristics reads as empty; Set needs a non-nil receiver, but
// the zero value is ready to use.
type Characteristics struct {
	keys   []string
	values map[string]string
}

// NewCharacteristics returns an empty Characteristics.
func NewCharacteristics() *Characteristics {
	return &Characteristics{values: make(map[string]string)}
}

// Set stores value under label.
func (c *Characteristics) Set(label, value string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	if _, ok := c.values[label]; !ok {
		c.keys = append(c.keys, label)
	}
	c.values[label] = value
}

// Get returns the value stored under label.
func (c *Characteristics) Get(label string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.values[label]
	return v, ok
}

// Len returns the number of distinct labels.
func (c *Characteristics) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Labels returns labels in insertion order.
func (c *Characteristics) Labels() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Map returns a plain copy of the label/value pairs.
func (c *Characteristics) Map() map[string]string {
	out := make(map[string]string, c.Len())
	if c == nil {
		return out
	}
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the pairs as a JSON object in insertion order.
func (c *Characteristics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.Labels() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the pairs the way they are stored in the output file.
func (c *Characteristics) String() string {
	b, err := c.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}
