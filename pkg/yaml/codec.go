package yaml

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const (
	strictMode  = true
	indentWidth = 2
)

// Codec decodes the configuration file and encodes command results as YAML.
type Codec struct{}

// NewCodec returns a new YAML Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode decodes in into v. Keys that don't map to a field of v are an error.
func (c *Codec) Decode(in []byte, v interface{}) error {
	r := bytes.NewReader(in)
	d := yaml.NewDecoder(r)
	d.KnownFields(strictMode)
	return d.Decode(v)
}

// Encode returns the YAML encoding of in.
func (c *Codec) Encode(in interface{}) ([]byte, error) {
	var buf bytes.Buffer
	e := yaml.NewEncoder(&buf)
	e.SetIndent(indentWidth)

	if err := e.Encode(in); err != nil {
		return nil, err
	}

	if err := e.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
