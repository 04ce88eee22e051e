package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/cipher"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/validation"
)

// Identity provisions accounts together with their RSA keypairs.
// A keypair is generated once, when the account is created.
type Identity struct {
	userStore    model.UserStore
	accountStore model.AccountStore
	hasher       model.PasswordHasher
	keygen       func() (cipher.KeyPair, error)
	logger       *logger.Logger
}

func NewIdentity(
	userStore model.UserStore,
	accountStore model.AccountStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *Identity {
	return &Identity{
		userStore:    userStore,
		accountStore: accountStore,
		hasher:       hasher,
		keygen:       cipher.GenerateKeyPair,
		logger:       logger,
	}
}

// Provision creates a user without an invite. It is used for the bootstrap admin.
// The stored row is re-read and returned.
func (s *Identity) Provision(ctx context.Context, params model.ProvisionParams, isAdmin bool) (model.User, error) {
	user, err := s.buildUser(params, isAdmin)
	if err != nil {
		return model.User{}, err
	}

	if _, err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.User{}, apierrors.NewErrUserExists(user.Username)
		}
		return model.User{}, storeError("create user", err)
	}

	stored, err := s.userStore.GetByUsername(ctx, user.Username)
	if err != nil {
		return model.User{}, storeError("re-read created user", err)
	}

	s.logger.Info("Identity service: user provisioned",
		"username", stored.Username,
		"is_admin", stored.IsAdmin)

	return stored, nil
}

// Register consumes inviteCode and creates a regular user. Nothing is written
// if the code is unknown or the username is taken.
func (s *Identity) Register(ctx context.Context, inviteCode string, params model.ProvisionParams) (model.User, error) {
	if inviteCode == "" {
		return model.User{}, apierrors.NewErrValidation("invite code is required")
	}

	user, err := s.buildUser(params, false)
	if err != nil {
		return model.User{}, err
	}

	stored, err := s.accountStore.Register(ctx, inviteCode, user)
	switch {
	case errors.Is(err, model.ErrInviteNotFound):
		return model.User{}, apierrors.NewErrInviteNotFound()
	case errors.Is(err, model.ErrConflict):
		return model.User{}, apierrors.NewErrUserExists(user.Username)
	case err != nil:
		return model.User{}, storeError("register user", err)
	}

	s.logger.Info("Identity service: user registered", "username", stored.Username)

	return stored, nil
}

func (s *Identity) buildUser(params model.ProvisionParams, isAdmin bool) (model.User, error) {
	if !validation.Username(params.Username) {
		return model.User{}, apierrors.NewErrInvalidUsername(params.Username)
	}
	if !validation.Password(params.Password) {
		return model.User{}, apierrors.NewErrInvalidPassword()
	}
	if err := validateColors(map[string]*string{
		"primary":   &params.PrimaryColor,
		"secondary": &params.SecondaryColor,
		"tertiary":  &params.TertiaryColor,
	}); err != nil {
		return model.User{}, err
	}

	keys, err := s.keygen()
	if err != nil {
		s.logger.Error("Identity service: keypair generation failed",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, apierrors.NewErrCrypto(err, "failed to generate keypair")
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return model.User{
		Username:       params.Username,
		PasswordHash:   hash,
		IsAdmin:        isAdmin,
		PublicKey:      keys.PublicKey,
		PrivateKey:     keys.PrivateKey,
		Description:    params.Description,
		DisplayName:    params.DisplayName,
		PrimaryColor:   params.PrimaryColor,
		SecondaryColor: params.SecondaryColor,
		TertiaryColor:  params.TertiaryColor,
	}, nil
}
