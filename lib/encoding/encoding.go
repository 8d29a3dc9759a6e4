// Package encoding reads and writes table configurations as YAML or msgpack
// and signs encoded configurations so they can round-trip through a client.
package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format identifies a serialization format.
type Format string

const (
	// YAML is the human-edited format. JSON documents decode as YAML.
	YAML Format = "yaml"
	// Msgpack is the compact binary format used for cached and signed configs.
	Msgpack Format = "msgpack"
)

var (
	ErrUnknownFormat    = errors.New("unknown format")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrSignatureInvalid = errors.New("signature verification failed")
)

// ParseFormat resolves a format name. The empty string selects YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "yaml", "yml", "json":
		return YAML, nil
	case "msgpack", "mp", "mpk":
		return Msgpack, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Unmarshal decodes data in the given format into v.
func Unmarshal(f Format, data []byte, v any) error {
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return nil
	case Msgpack:
		if err := msgpack.Unmarshal(data, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Marshal encodes v in the given format.
func Marshal(f Format, v any) ([]byte, error) {
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case Msgpack:
		return msgpack.Marshal(v)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
