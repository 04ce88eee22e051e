package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rakutentech/jwk-go/jwk"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/cipher"
	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// ProfileService defines profile reads and edits.
type ProfileService interface {
	GetProfile(ctx context.Context, username string) (model.PublicProfile, error)
	GetPublicKey(ctx context.Context, username string) (string, error)
	UpdateProfile(ctx context.Context, username string, params model.UpdateProfileParams) error
	ChangePassword(ctx context.Context, user model.User, oldPassword, newPassword string) error
}

// AccountService defines invite and account removal operations.
type AccountService interface {
	CreateInvite(ctx context.Context, caller model.User, code string) (model.InviteCode, error)
	DeleteAccount(ctx context.Context, username string) error
	Kick(ctx context.Context, caller model.User, target string) error
}

// User handles profile endpoints.
type User struct {
	profileService ProfileService
	accountService AccountService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(
	profileService ProfileService,
	accountService AccountService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *User {
	return &User{
		profileService: profileService,
		accountService: accountService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type editRequest struct {
	NewValue string `json:"new_value"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *User) Profile(c echo.Context) error {
	profile, err := h.profileService.GetProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newProfileResponse(profile))
}

// PublicKey returns the user's key as PEM and as a JWK for client side encryption.
func (h *User) PublicKey(c echo.Context) error {
	username := c.Param("username")

	pemKey, err := h.profileService.GetPublicKey(c.Request().Context(), username)
	if err != nil {
		return err
	}

	jwkJSON, err := encodePublicKeyJWK(pemKey, username)
	if err != nil {
		return apierrors.NewErrCrypto(err, "failed to encode public key")
	}

	return c.JSON(http.StatusOK, publicKeyResponse{
		Username:  username,
		PublicKey: pemKey,
		JWK:       jwkJSON,
	})
}

func encodePublicKeyJWK(pemKey, keyID string) ([]byte, error) {
	publicKey, err := cipher.ParsePublicKey(pemKey)
	if err != nil {
		return nil, err
	}

	rawJWK, err := jwk.NewSpec(publicKey).ToJWK()
	if err != nil {
		return nil, err
	}
	rawJWK.Use = "enc"
	rawJWK.Alg = "RSA1_5"
	rawJWK.Kid = keyID

	return rawJWK.MarshalJSON()
}

func (h *User) EditPassword(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err = h.profileService.ChangePassword(c.Request().Context(), user, req.OldPassword, req.NewPassword)
	return writeStatus(c, h.logger, "change password", err)
}

func (h *User) EditName(c echo.Context) error {
	return h.edit(c, "edit display name", func(p *model.UpdateProfileParams, v string) { p.DisplayName = &v })
}

func (h *User) EditBio(c echo.Context) error {
	return h.edit(c, "edit description", func(p *model.UpdateProfileParams, v string) { p.Description = &v })
}

func (h *User) EditPrimaryColor(c echo.Context) error {
	return h.edit(c, "edit primary color", func(p *model.UpdateProfileParams, v string) { p.PrimaryColor = &v })
}

func (h *User) EditSecondaryColor(c echo.Context) error {
	return h.edit(c, "edit secondary color", func(p *model.UpdateProfileParams, v string) { p.SecondaryColor = &v })
}

func (h *User) EditTertiaryColor(c echo.Context) error {
	return h.edit(c, "edit tertiary color", func(p *model.UpdateProfileParams, v string) { p.TertiaryColor = &v })
}

// EditPicture sets the profile picture to one of the caller's files.
func (h *User) EditPicture(c echo.Context) error {
	return h.edit(c, "edit profile picture", func(p *model.UpdateProfileParams, v string) { p.ProfilePictureID = &v })
}

func (h *User) edit(c echo.Context, op string, set func(*model.UpdateProfileParams, string)) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	var req editRequest
	if err := bind(c, &req); err != nil {
		return writeStatus(c, h.logger, op, err)
	}

	var params model.UpdateProfileParams
	set(&params, req.NewValue)

	err = h.profileService.UpdateProfile(c.Request().Context(), user.Username, params)
	return writeStatus(c, h.logger, op, err)
}

// Delete removes the caller's own account.
func (h *User) Delete(c echo.Context) error {
	user, err := currentUser(c, h.contextManager)
	if err != nil {
		return err
	}

	err = h.accountService.DeleteAccount(c.Request().Context(), user.Username)
	return writeStatus(c, h.logger, "delete account", err)
}
