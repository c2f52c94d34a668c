package error

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	require.NoError(t, Wrap(nil, "nothing"))

	cause := errors.New("boom")
	err := Wrap(cause, "call %s", "verify")
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "call verify: boom", err.Error())

	var re *RuntimeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "call verify", re.Msg)
	assert.Equal(t, "bare", (&RuntimeError{Msg: "bare"}).Error())
}
