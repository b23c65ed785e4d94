package domain

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsUnwrap(t *testing.T) {
	var err error = &ParseError{Cause: io.ErrUnexpectedEOF}
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Contains(t, err.Error(), "cannot parse BioPAX model")

	err = &SerializationError{Cause: io.ErrShortWrite}
	var se *SerializationError
	assert.True(t, errors.As(err, &se))
	assert.True(t, errors.Is(err, io.ErrShortWrite))
}
