package encoding_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leighmacdonald/fpl-form/internal/encoding"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestUnmarshalJSON(t *testing.T) {
	value, err := encoding.UnmarshalJSON[sample](strings.NewReader(`{"id": 3, "name": "Arsenal"}`))
	require.NoError(t, err)
	require.Equal(t, sample{ID: 3, Name: "Arsenal"}, value)

	_, errBad := encoding.UnmarshalJSON[sample](strings.NewReader(`{"id": 3,`))
	require.Error(t, errBad)
	require.True(t, errors.Is(errBad, encoding.ErrDecodeJSON))
}
