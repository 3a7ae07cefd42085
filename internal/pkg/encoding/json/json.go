// Package json encodes and decodes JSON via json-iterator, compatible with encoding/json.
package json

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary // nolint: gochecknoglobals

func Encode(v any, pretty bool) ([]byte, error) {
	if pretty {
		return api.MarshalIndent(v, "", "  ")
	}
	return api.Marshal(v)
}

func EncodeString(v any, pretty bool) (string, error) {
	data, err := Encode(v, pretty)
	return string(data), err
}

func MustEncodeString(v any, pretty bool) string {
	out, err := EncodeString(v, pretty)
	if err != nil {
		panic(errors.Wrap(err, "cannot encode JSON"))
	}
	return out
}

func Decode(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

func DecodeString(data string, v any) error {
	return Decode([]byte(data), v)
}

// Marshal and Unmarshal match the function types expected by HTTP clients.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
