package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/validation"
)

type Profile struct {
	userStore model.UserStore
	fileStore model.FileStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

func NewProfile(
	userStore model.UserStore,
	fileStore model.FileStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *Profile {
	return &Profile{
		userStore: userStore,
		fileStore: fileStore,
		hasher:    hasher,
		logger:    logger,
	}
}

func (s *Profile) GetProfile(ctx context.Context, username string) (model.PublicProfile, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		return model.PublicProfile{}, lookupUser(err, username)
	}
	return user.Profile(), nil
}

// GetPublicKey returns the PEM encoded public key of username.
func (s *Profile) GetPublicKey(ctx context.Context, username string) (string, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		return "", lookupUser(err, username)
	}
	return user.PublicKey, nil
}

// UpdateProfile applies the non-nil fields. A profile picture must be a file
// owned by the user.
func (s *Profile) UpdateProfile(ctx context.Context, username string, params model.UpdateProfileParams) error {
	if err := validateColors(map[string]*string{
		"primary":   params.PrimaryColor,
		"secondary": params.SecondaryColor,
		"tertiary":  params.TertiaryColor,
	}); err != nil {
		return err
	}

	if params.ProfilePictureID != nil {
		file, err := s.fileStore.GetByID(ctx, *params.ProfilePictureID)
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrFileNotFound(*params.ProfilePictureID)
		}
		if err != nil {
			return storeError("get profile picture", err)
		}
		if file.Owner != username {
			return apierrors.NewErrNotFileOwner(file.FileID)
		}
	}

	if err := s.userStore.UpdateProfile(ctx, username, params); err != nil {
		s.logger.Error("Profile service: update failed",
			"username", username,
			"error", err.Error())
		return lookupUser(err, username)
	}

	return nil
}

// ChangePassword requires the current password.
func (s *Profile) ChangePassword(ctx context.Context, user model.User, oldPassword, newPassword string) error {
	if !s.hasher.Compare(user.PasswordHash, oldPassword) {
		return apierrors.NewErrInvalidCredentials()
	}
	if !validation.Password(newPassword) {
		return apierrors.NewErrInvalidPassword()
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userStore.UpdatePassword(ctx, user.Username, hash); err != nil {
		return lookupUser(err, user.Username)
	}

	s.logger.Info("Profile service: password changed", "username", user.Username)

	return nil
}
