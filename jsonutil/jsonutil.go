// Package jsonutil provides thin wrappers around sonic so the rest of the
// module shares one JSON configuration for encoding and decoding.
package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

// Marshal serialises v using sonic's standard-compatible configuration.
func Marshal(v any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

// MarshalIndent serialises v with the given prefix and indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses data into v.
func Unmarshal(data []byte, v any) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

// Encode writes the JSON encoding of v to w followed by a newline.
func Encode(w io.Writer, v any) error {
	return sonic.ConfigStd.NewEncoder(w).Encode(v)
}

// Decode reads the next JSON value from r into v.
func Decode(r io.Reader, v any) error {
	return sonic.ConfigStd.NewDecoder(r).Decode(v)
}
