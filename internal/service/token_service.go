package service

import (
	"context"
	"errors"
	"time"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// TokenService issues and resolves opaque bearer tokens. Tokens do not expire;
// logout is the only way to revoke one.
type TokenService struct {
	tokenStore model.TokenStore
	userStore  model.UserStore
	hasher     model.PasswordHasher
	logger     *logger.Logger
}

func NewTokenService(
	tokenStore model.TokenStore,
	userStore model.UserStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *TokenService {
	return &TokenService{
		tokenStore: tokenStore,
		userStore:  userStore,
		hasher:     hasher,
		logger:     logger,
	}
}

// Login verifies the password and stores a new token. Several tokens may
// exist for one user at the same time.
func (s *TokenService) Login(ctx context.Context, username, password string) (model.APIToken, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.APIToken{}, apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.APIToken{}, storeError("get user", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Warn("Token service: password mismatch", "username", username)
		return model.APIToken{}, apierrors.NewErrInvalidCredentials()
	}

	now := time.Now()
	tokenID := newID(now, username)
	token, err := s.tokenStore.Create(ctx, model.APIToken{
		TokenID:   tokenID,
		Token:     hashString(tokenID),
		Owner:     username,
		CreatedAt: now,
	})
	if err != nil {
		return model.APIToken{}, storeError("create token", err)
	}

	s.logger.Info("Token service: token issued", "username", username)

	return token, nil
}

func (s *TokenService) Logout(ctx context.Context, token string) error {
	err := s.tokenStore.DeleteByToken(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrTokenNotFound()
	}
	if err != nil {
		return storeError("delete token", err)
	}
	return nil
}

// ResolveUser returns the owner of token.
func (s *TokenService) ResolveUser(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, apierrors.NewErrMissingAuthorizationToken()
	}

	stored, err := s.tokenStore.GetByToken(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrInvalidAuthorizationToken()
	}
	if err != nil {
		return model.User{}, storeError("get token", err)
	}

	user, err := s.userStore.GetByUsername(ctx, stored.Owner)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrInvalidAuthorizationToken()
	}
	if err != nil {
		return model.User{}, storeError("get token owner", err)
	}

	return user, nil
}

func (s *TokenService) ListTokens(ctx context.Context, username string) ([]model.APIToken, error) {
	tokens, err := s.tokenStore.ListByOwner(ctx, username)
	if err != nil {
		return nil, storeError("list tokens", err)
	}
	return tokens, nil
}
