package service

import (
	"errors"
	"fmt"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/cipher"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/validation"
)

// storeError wraps a persistence failure so that the cause stays out of responses.
func storeError(op string, err error) error {
	return apierrors.NewErrStore(fmt.Errorf("failed to %s: %w", op, err))
}

func cipherError(op string, err error) error {
	if errors.Is(err, cipher.ErrPayloadTooLarge) {
		return &apierrors.APIError{
			Kind:    apierrors.KindValidation,
			Message: fmt.Sprintf("message exceeds %d bytes", validation.MaxMessageBytes),
			Err:     err,
		}
	}
	return apierrors.NewErrCrypto(err, "failed to %s", op)
}

// lookupUser maps a missing user to a typed not found error.
func lookupUser(err error, username string) error {
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrUserNotFound(username)
	}
	return storeError("get user", err)
}

func validateColors(fields map[string]*string) error {
	for _, name := range []string{"primary", "secondary", "tertiary"} {
		value := fields[name]
		if value != nil && !validation.Color(*value) {
			return apierrors.NewErrInvalidColor(name, *value)
		}
	}
	return nil
}
