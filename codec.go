package elemental

import (
	"os"

	"github.com/pthm/elemental/lib/encoding"
)

// LoadTableConfig decodes a table configuration. format is "yaml" (the
// default, which also reads JSON) or "msgpack". snake_case keys such as
// no_data_message are accepted wherever a camelCase key is not given.
// Errors match IsConfigError.
func LoadTableConfig(data []byte, format string) (TableConfig, error) {
	var cfg TableConfig
	f, err := encoding.ParseFormat(format)
	if err != nil {
		return cfg, wrapEncodingError(err)
	}
	if err := encoding.Unmarshal(f, data, &cfg); err != nil {
		return TableConfig{}, wrapEncodingError(err)
	}
	return cfg, nil
}

// LoadTableConfigFile reads a table configuration from path, choosing the
// format from its extension.
func LoadTableConfigFile(path string) (TableConfig, error) {
	f, err := encoding.FormatFromPath(path)
	if err != nil {
		return TableConfig{}, wrapEncodingError(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return TableConfig{}, err
	}
	return LoadTableConfig(data, string(f))
}

// MarshalTableConfig encodes cfg in the named format.
func MarshalTableConfig(cfg TableConfig, format string) ([]byte, error) {
	f, err := encoding.ParseFormat(format)
	if err != nil {
		return nil, wrapEncodingError(err)
	}
	data, err := encoding.Marshal(f, cfg)
	if err != nil {
		return nil, wrapEncodingError(err)
	}
	return data, nil
}
