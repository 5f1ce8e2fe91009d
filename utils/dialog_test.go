package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/elC0mpa/intra-logtime/model"
	"github.com/stretchr/testify/assert"
)

func TestErrorDialogText(t *testing.T) {
	tests := []struct {
		err   error
		title string
	}{
		{fmt.Errorf("%w: token endpoint returned 401", model.ErrAuth), "Authentication failed"},
		{model.ErrMissingCredentials, "Authentication failed"},
		{fmt.Errorf("invalid user ghost: %w", model.ErrNotFound), "Unknown login"},
		{fmt.Errorf("begin date: %w", model.ErrInvalidDate), "Invalid dates"},
		{model.ErrInvalidRange, "Invalid dates"},
		{fmt.Errorf("%w: connection refused", model.ErrTransport), "Intra unreachable"},
		{errors.New("boom"), "Error"},
	}

	for _, tt := range tests {
		title, body := ErrorDialogText(tt.err)
		assert.Equal(t, tt.title, title)
		assert.Equal(t, tt.err.Error(), body)
	}

	title, body := ErrorDialogText(nil)
	assert.Equal(t, "Error", title)
	assert.Empty(t, body)
}
