package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/mocks"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/testutil"
)

func newTestTokenService(t *testing.T) (*TokenService, *mocks.TokenStore, *mocks.UserStore, *mocks.PasswordHasher) {
	t.Helper()

	tokenStore := mocks.NewTokenStore(t)
	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)

	return NewTokenService(tokenStore, userStore, hasher, testutil.MakeNoopLogger()), tokenStore, userStore, hasher
}

func TestTokenService_Login_Success(t *testing.T) {
	s, tokenStore, userStore, hasher := newTestTokenService(t)

	userStore.On("GetByUsername", mock.Anything, "alice").Return(model.User{Username: "alice", PasswordHash: "H"}, nil)
	hasher.On("Compare", "H", "pw").Return(true)
	tokenStore.On("Create", mock.Anything, mock.MatchedBy(func(tok model.APIToken) bool {
		return tok.Owner == "alice" && tok.Token == hashString(tok.TokenID) && len(tok.Token) == 64
	})).Return(func(_ context.Context, tok model.APIToken) (model.APIToken, error) { return tok, nil })

	tok, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", tok.Owner)
	assert.NotEmpty(t, tok.Token)
}

func TestTokenService_Login_TokensDiffer(t *testing.T) {
	s, tokenStore, userStore, hasher := newTestTokenService(t)

	userStore.On("GetByUsername", mock.Anything, "alice").Return(model.User{Username: "alice", PasswordHash: "H"}, nil)
	hasher.On("Compare", "H", "pw").Return(true)
	tokenStore.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, tok model.APIToken) (model.APIToken, error) { return tok, nil })

	first, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	second, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestTokenService_Login_Rejected(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		s, _, userStore, _ := newTestTokenService(t)
		userStore.On("GetByUsername", mock.Anything, "ghost").Return(model.User{}, model.ErrNotFound)

		_, err := s.Login(context.Background(), "ghost", "pw")
		assert.Equal(t, apierrors.KindUnauthenticated, apierrors.KindOf(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		s, _, userStore, hasher := newTestTokenService(t)
		userStore.On("GetByUsername", mock.Anything, "alice").Return(model.User{Username: "alice", PasswordHash: "H"}, nil)
		hasher.On("Compare", "H", "bad").Return(false)

		_, err := s.Login(context.Background(), "alice", "bad")
		assert.Equal(t, apierrors.KindUnauthenticated, apierrors.KindOf(err))
	})
}

func TestTokenService_Logout(t *testing.T) {
	s, tokenStore, _, _ := newTestTokenService(t)
	tokenStore.On("DeleteByToken", mock.Anything, "T1").Return(nil).Once()
	tokenStore.On("DeleteByToken", mock.Anything, "T2").Return(model.ErrNotFound).Once()

	require.NoError(t, s.Logout(context.Background(), "T1"))

	err := s.Logout(context.Background(), "T2")
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))
}

func TestTokenService_ResolveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, tokenStore, userStore, _ := newTestTokenService(t)
		tokenStore.On("GetByToken", mock.Anything, "T").Return(model.APIToken{Token: "T", Owner: "alice"}, nil)
		userStore.On("GetByUsername", mock.Anything, "alice").Return(model.User{Username: "alice"}, nil)

		user, err := s.ResolveUser(ctx, "T")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("empty", func(t *testing.T) {
		s, _, _, _ := newTestTokenService(t)

		_, err := s.ResolveUser(ctx, "")
		assert.Equal(t, apierrors.KindUnauthenticated, apierrors.KindOf(err))
	})

	t.Run("unknown token", func(t *testing.T) {
		s, tokenStore, _, _ := newTestTokenService(t)
		tokenStore.On("GetByToken", mock.Anything, "T").Return(model.APIToken{}, model.ErrNotFound)

		_, err := s.ResolveUser(ctx, "T")
		assert.Equal(t, apierrors.KindUnauthenticated, apierrors.KindOf(err))
	})

	t.Run("store failure", func(t *testing.T) {
		s, tokenStore, _, _ := newTestTokenService(t)
		tokenStore.On("GetByToken", mock.Anything, "T").Return(model.APIToken{}, errors.New("down"))

		_, err := s.ResolveUser(ctx, "T")
		assert.Equal(t, apierrors.KindStore, apierrors.KindOf(err))
	})
}

func TestTokenService_ListTokens(t *testing.T) {
	s, tokenStore, _, _ := newTestTokenService(t)
	tokenStore.On("ListByOwner", mock.Anything, "alice").Return([]model.APIToken{{TokenID: "A"}, {TokenID: "B"}}, nil)

	tokens, err := s.ListTokens(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}
