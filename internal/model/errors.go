package model

import (
	"errors"
	"fmt"
)

// Store level errors. Repositories translate driver errors into these so that
// services never depend on a particular database.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrInconsistentState = errors.New("inconsistent state")

	ErrInviteNotFound = fmt.Errorf("invite code %w", ErrNotFound)
)
