package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPreservesMessageVerbatim(t *testing.T) {
	err := NewError(ErrAuthentication, "Invalid login credentials")

	assert.Equal(t, "Invalid login credentials", err.Error())
	assert.True(t, errors.Is(err, ErrAuthentication))
	assert.False(t, errors.Is(err, ErrProvider))
}

func TestWrapProvider(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")

	err := WrapProvider(ErrProvider, cause)
	assert.Equal(t, cause.Error(), err.Error())
	assert.True(t, errors.Is(err, ErrProvider))

	assert.Nil(t, WrapProvider(ErrProvider, nil))
}
