package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reqctx "github.com/dtroode/yokai-server/internal/api/http/context"
	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/mocks"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/testutil"
)

func newTestUser(t *testing.T) (*User, *mocks.ProfileService, *mocks.AccountService) {
	t.Helper()

	profiles := mocks.NewProfileService(t)
	accounts := mocks.NewAccountService(t)
	return NewUser(profiles, accounts, reqctx.NewManager(), testutil.MakeNoopLogger()), profiles, accounts
}

func TestUser_Profile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, profiles, _ := newTestUser(t)
		picture := "F1"
		profiles.On("GetProfile", mock.Anything, "bobby").
			Return(model.PublicProfile{Username: "bobby", DisplayName: "Bob", ProfilePictureID: &picture}, nil)

		rec := serve(t, testRequest{method: http.MethodGet, route: "/user/:username", target: "/user/bobby"}, h.Profile)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"username":"bobby","display_name":"Bob","description":"","profile_picture":"F1"}`, rec.Body.String())
	})

	t.Run("unknown", func(t *testing.T) {
		h, profiles, _ := newTestUser(t)
		profiles.On("GetProfile", mock.Anything, "ghost").Return(model.PublicProfile{}, apierrors.NewErrUserNotFound("ghost"))

		rec := serve(t, testRequest{method: http.MethodGet, route: "/user/:username", target: "/user/ghost"}, h.Profile)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUser_PublicKey(t *testing.T) {
	h, profiles, _ := newTestUser(t)
	kp := testutil.KeyPair(t, "bobby")
	profiles.On("GetPublicKey", mock.Anything, "bobby").Return(kp.PublicKey, nil)

	rec := serve(t, testRequest{method: http.MethodGet, route: "/user/:username/key", target: "/user/bobby/key"}, h.PublicKey)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[publicKeyResponse](t, rec)
	assert.Equal(t, "bobby", got.Username)
	assert.Equal(t, kp.PublicKey, got.PublicKey)

	var key map[string]any
	require.NoError(t, json.Unmarshal(got.JWK, &key))
	assert.Equal(t, "RSA", key["kty"])
	assert.Equal(t, "enc", key["use"])
	assert.Equal(t, "RSA1_5", key["alg"])
	assert.Equal(t, "bobby", key["kid"])
	assert.NotEmpty(t, key["n"])
	assert.Equal(t, "AQAB", key["e"])
	assert.NotContains(t, key, "d")
}

func TestUser_PublicKey_Corrupt(t *testing.T) {
	h, profiles, _ := newTestUser(t)
	profiles.On("GetPublicKey", mock.Anything, "bobby").Return("not a pem", nil)

	rec := serve(t, testRequest{method: http.MethodGet, route: "/user/:username/key", target: "/user/bobby/key"}, h.PublicKey)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUser_Edit(t *testing.T) {
	value := "new"
	tests := []struct {
		name    string
		handler func(*User) echo.HandlerFunc
		params  model.UpdateProfileParams
	}{
		{name: "display name", handler: func(h *User) echo.HandlerFunc { return h.EditName }, params: model.UpdateProfileParams{DisplayName: &value}},
		{name: "description", handler: func(h *User) echo.HandlerFunc { return h.EditBio }, params: model.UpdateProfileParams{Description: &value}},
		{name: "primary color", handler: func(h *User) echo.HandlerFunc { return h.EditPrimaryColor }, params: model.UpdateProfileParams{PrimaryColor: &value}},
		{name: "secondary color", handler: func(h *User) echo.HandlerFunc { return h.EditSecondaryColor }, params: model.UpdateProfileParams{SecondaryColor: &value}},
		{name: "tertiary color", handler: func(h *User) echo.HandlerFunc { return h.EditTertiaryColor }, params: model.UpdateProfileParams{TertiaryColor: &value}},
		{name: "picture", handler: func(h *User) echo.HandlerFunc { return h.EditPicture }, params: model.UpdateProfileParams{ProfilePictureID: &value}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, profiles, _ := newTestUser(t)
			profiles.On("UpdateProfile", mock.Anything, "alice", tt.params).Return(nil)

			rec := serve(t, testRequest{
				method: http.MethodPost,
				route:  "/user/edit",
				body:   jsonBody(`{"new_value":"new"}`),
				user:   &testUser,
			}, tt.handler(h))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, decode[statusResponse](t, rec).Status)
		})
	}
}

func TestUser_Edit_Rejected(t *testing.T) {
	h, profiles, _ := newTestUser(t)
	profiles.On("UpdateProfile", mock.Anything, "alice", mock.Anything).Return(apierrors.NewErrInvalidColor("primary", "red"))

	rec := serve(t, testRequest{
		method: http.MethodPost,
		route:  "/user/edit/pcolor",
		body:   jsonBody(`{"new_value":"red"}`),
		user:   &testUser,
	}, h.EditPrimaryColor)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[statusResponse](t, rec)
	assert.False(t, got.Status)
	assert.NotEmpty(t, got.Details)
}

func TestUser_EditPassword(t *testing.T) {
	h, profiles, _ := newTestUser(t)
	profiles.On("ChangePassword", mock.Anything, testUser, "oldpw", "newpw").Return(apierrors.NewErrInvalidCredentials())

	rec := serve(t, testRequest{
		method: http.MethodPost,
		route:  "/user/edit/password",
		body:   jsonBody(`{"old_password":"oldpw","new_password":"newpw"}`),
		user:   &testUser,
	}, h.EditPassword)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, decode[statusResponse](t, rec).Status)
}

func TestUser_Delete(t *testing.T) {
	h, _, accounts := newTestUser(t)
	accounts.On("DeleteAccount", mock.Anything, "alice").Return(nil)

	rec := serve(t, testRequest{method: http.MethodPost, route: "/user/delete", user: &testUser}, h.Delete)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[statusResponse](t, rec).Status)
}
