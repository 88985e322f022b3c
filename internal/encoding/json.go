// Package encoding provides generic decoding helpers shared by the upstream clients.
package encoding

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var (
	ErrDecodeJSON = errors.New("failed to decode JSON")

	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

func UnmarshalJSON[T any](reader io.Reader) (T, error) {
	var value T
	if err := json.NewDecoder(reader).Decode(&value); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	return value, nil
}
