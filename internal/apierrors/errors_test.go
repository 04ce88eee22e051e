package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindAuthorization, http.StatusForbidden},
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindCrypto, http.StatusUnprocessableEntity},
		{KindConflict, http.StatusConflict},
		{KindStore, http.StatusInternalServerError},
		{KindUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("failed to create chat: %w", NewErrChatExists("alice", "bobby"))
	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestNewErrStore_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewErrStore(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal storage error", err.Message)
	assert.Contains(t, err.Error(), "connection reset")
}
