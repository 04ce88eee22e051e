package model

import "context"

// AccountStore runs the multi-table account operations in a single transaction.
type AccountStore interface {
	// Register consumes the invite code and creates the user atomically.
	// Returns ErrInviteNotFound if the code does not exist and ErrConflict if
	// the username is taken. In both cases nothing is written.
	Register(ctx context.Context, inviteCode string, user User) (User, error)
	// DeleteAccount removes the messages in the user's chats, the chats,
	// file rows, tokens and the user itself. It returns the removed file rows
	// so that their blobs can be cleaned up.
	DeleteAccount(ctx context.Context, username string) ([]UserFile, error)
}
