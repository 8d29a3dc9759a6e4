package encoding

import (
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// EachPair walks a YAML mapping in document order. A null node is treated as
// an empty mapping.
func EachPair(n *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	n = resolve(n)
	if n == nil || isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidFormat, n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := fn(n.Content[i].Value, resolve(n.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// RenameKeys renames the keys of a YAML mapping in place. A key is renamed
// only when the target key is not already present, so an explicit camelCase
// key always wins over its snake_case alias.
func RenameKeys(n *yaml.Node, aliases map[string]string) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return
	}
	present := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		present[n.Content[i].Value] = true
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		to, ok := aliases[key.Value]
		if !ok || present[to] {
			continue
		}
		present[to] = true
		key.Value = to
	}
}

// IsNull reports whether a YAML node is an explicit null.
func IsNull(n *yaml.Node) bool {
	return isNull(resolve(n))
}

// IsInt reports whether a scalar key is a base-10 integer.
func IsInt(key string) bool {
	_, err := strconv.Atoi(key)
	return err == nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && (n.Kind == yaml.DocumentNode || n.Kind == yaml.AliasNode) {
		if n.Kind == yaml.AliasNode {
			n = n.Alias
			continue
		}
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// DecodeMap reads a msgpack map in wire order, handing each key to fn. fn
// must consume exactly one value from dec. A nil map decodes as empty.
func DecodeMap(dec *msgpack.Decoder, fn func(key string) error) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		k, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return err
		}
		if err := fn(fmt.Sprint(k)); err != nil {
			return err
		}
	}
	return nil
}

// EncodeMap writes a msgpack map header followed by n pairs produced by fn.
func EncodeMap(enc *msgpack.Encoder, n int, fn func(i int) error) error {
	if err := enc.EncodeMapLen(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}
