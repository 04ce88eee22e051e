package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reqctx "github.com/dtroode/yokai-server/internal/api/http/context"
	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/mocks"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/testutil"
)

func newTestAuth(t *testing.T) (*Auth, *mocks.IdentityService, *mocks.TokenService) {
	t.Helper()

	identity := mocks.NewIdentityService(t)
	tokens := mocks.NewTokenService(t)
	return NewAuth(identity, tokens, reqctx.NewManager(), testutil.MakeNoopLogger()), identity, tokens
}

func TestAuth_Register(t *testing.T) {
	body := `{"username":"alice","password":"s3cret","display_name":"Alice","description":"hi",` +
		`"primary_color":"#000000","secondary_color":"#FFFFFF","tertiary_color":"#DF0045","invite_code":"WELCOME"}`
	params := model.ProvisionParams{
		Username:       "alice",
		Password:       "s3cret",
		DisplayName:    "Alice",
		Description:    "hi",
		PrimaryColor:   "#000000",
		SecondaryColor: "#FFFFFF",
		TertiaryColor:  "#DF0045",
	}

	t.Run("created", func(t *testing.T) {
		h, identity, _ := newTestAuth(t)
		identity.On("Register", mock.Anything, "WELCOME", params).
			Return(model.User{Username: "alice", DisplayName: "Alice", PrimaryColor: "#000000"}, nil)

		rec := serve(t, testRequest{method: http.MethodPost, route: "/auth/register", body: jsonBody(body)}, h.Register)

		require.Equal(t, http.StatusCreated, rec.Code)
		got := decode[userResponse](t, rec)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "Alice", got.DisplayName)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "private")
	})

	t.Run("invite not found", func(t *testing.T) {
		h, identity, _ := newTestAuth(t)
		identity.On("Register", mock.Anything, "WELCOME", params).Return(model.User{}, apierrors.NewErrInviteNotFound())

		rec := serve(t, testRequest{method: http.MethodPost, route: "/auth/register", body: jsonBody(body)}, h.Register)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotEmpty(t, decode[errorResponse](t, rec).Details)
	})
}

func TestAuth_Login(t *testing.T) {
	t.Run("token issued", func(t *testing.T) {
		h, _, tokens := newTestAuth(t)
		tokens.On("Login", mock.Anything, "alice", "s3cret").Return(model.APIToken{Token: "ABC"}, nil)

		rec := serve(t, testRequest{
			method: http.MethodPost,
			route:  "/auth/login",
			body:   jsonBody(`{"username":"alice","password":"s3cret"}`),
		}, h.Login)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tokenResponse{APIToken: "ABC"}, decode[tokenResponse](t, rec))
	})

	t.Run("bad credentials", func(t *testing.T) {
		h, _, tokens := newTestAuth(t)
		tokens.On("Login", mock.Anything, "alice", "wrong").Return(model.APIToken{}, apierrors.NewErrInvalidCredentials())

		rec := serve(t, testRequest{
			method: http.MethodPost,
			route:  "/auth/login",
			body:   jsonBody(`{"username":"alice","password":"wrong"}`),
		}, h.Login)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		h, _, _ := newTestAuth(t)

		rec := serve(t, testRequest{
			method: http.MethodPost,
			route:  "/auth/login",
			body:   jsonBody(`{"username":"alice"}`),
		}, h.Login)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "password is required", decode[errorResponse](t, rec).Details)
	})
}

func TestAuth_Logout(t *testing.T) {
	t.Run("revokes current token", func(t *testing.T) {
		h, _, tokens := newTestAuth(t)
		tokens.On("Logout", mock.Anything, testToken).Return(nil)

		rec := serve(t, testRequest{method: http.MethodPost, route: "/auth/logout", user: &testUser}, h.Logout)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[statusResponse](t, rec).Status)
	})

	t.Run("already revoked", func(t *testing.T) {
		h, _, tokens := newTestAuth(t)
		tokens.On("Logout", mock.Anything, testToken).Return(apierrors.NewErrTokenNotFound())

		rec := serve(t, testRequest{method: http.MethodPost, route: "/auth/logout", user: &testUser}, h.Logout)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, decode[statusResponse](t, rec).Status)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _, _ := newTestAuth(t)

		rec := serve(t, testRequest{method: http.MethodPost, route: "/auth/logout"}, h.Logout)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuth_Tokens(t *testing.T) {
	h, _, tokens := newTestAuth(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tokens.On("ListTokens", mock.Anything, "alice").Return([]model.APIToken{
		{TokenID: "T1", Token: testToken, Owner: "alice", CreatedAt: created},
		{TokenID: "T2", Token: "OTHER", Owner: "alice", CreatedAt: created},
	}, nil)

	rec := serve(t, testRequest{method: http.MethodGet, route: "/auth/tokens", user: &testUser}, h.Tokens)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]tokenInfoResponse](t, rec)
	assert.Equal(t, []tokenInfoResponse{
		{TokenID: "T1", CreatedAt: "2024-03-01T12:00:00Z", Current: true},
		{TokenID: "T2", CreatedAt: "2024-03-01T12:00:00Z", Current: false},
	}, got)
	assert.NotContains(t, rec.Body.String(), "OTHER")
}
