package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// Account covers invites and account removal.
type Account struct {
	accountStore model.AccountStore
	userStore    model.UserStore
	inviteStore  model.InviteStore
	storage      model.Storage
	logger       *logger.Logger
}

func NewAccount(
	accountStore model.AccountStore,
	userStore model.UserStore,
	inviteStore model.InviteStore,
	storage model.Storage,
	logger *logger.Logger,
) *Account {
	return &Account{
		accountStore: accountStore,
		userStore:    userStore,
		inviteStore:  inviteStore,
		storage:      storage,
		logger:       logger,
	}
}

// CreateInvite stores a single-use invite code. Admin only.
func (s *Account) CreateInvite(ctx context.Context, caller model.User, code string) (model.InviteCode, error) {
	if !caller.IsAdmin {
		return model.InviteCode{}, apierrors.NewErrAdminRequired()
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return model.InviteCode{}, apierrors.NewErrValidation("invite code is required")
	}

	now := time.Now()
	invite, err := s.inviteStore.Create(ctx, model.InviteCode{
		CodeID:    newID(now, code),
		Code:      code,
		CreatedAt: now,
	})
	if errors.Is(err, model.ErrConflict) {
		return model.InviteCode{}, apierrors.NewErrInviteExists()
	}
	if err != nil {
		return model.InviteCode{}, storeError("create invite", err)
	}

	s.logger.Info("Account service: invite created", "admin", caller.Username)

	return invite, nil
}

// DeleteAccount removes the user and everything the user owns. The rows go in
// one transaction; blobs are removed afterwards and failures are only logged.
func (s *Account) DeleteAccount(ctx context.Context, username string) error {
	files, err := s.accountStore.DeleteAccount(ctx, username)
	if err != nil {
		return lookupUser(err, username)
	}

	for _, file := range files {
		if err := s.storage.Delete(ctx, file.FilePath); err != nil {
			s.logger.Error("Account service: failed to remove blob",
				"username", username,
				"file_id", file.FileID,
				"error", err.Error())
		}
	}

	s.logger.Info("Account service: account deleted",
		"username", username,
		"files", len(files))

	return nil
}

// Kick deletes another user's account. Admin only; admins cannot be kicked.
func (s *Account) Kick(ctx context.Context, caller model.User, target string) error {
	if !caller.IsAdmin {
		return apierrors.NewErrAdminRequired()
	}
	if target == caller.Username {
		return apierrors.NewErrValidation("use account deletion to remove your own account")
	}

	user, err := s.userStore.GetByUsername(ctx, target)
	if err != nil {
		return lookupUser(err, target)
	}
	if user.IsAdmin {
		return apierrors.NewErrCannotKickAdmin(target)
	}

	s.logger.Info("Account service: kicking user",
		"admin", caller.Username,
		"username", target)

	return s.DeleteAccount(ctx, target)
}
