package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtroode/yokai-server/internal/cipher"
	"github.com/dtroode/yokai-server/internal/model"
)

var (
	keysMu sync.Mutex
	keys   = map[string]cipher.KeyPair{}
)

// KeyPair returns an RSA keypair cached per name, so tests pay for key
// generation once per identity.
func KeyPair(t testing.TB, name string) cipher.KeyPair {
	t.Helper()

	keysMu.Lock()
	defer keysMu.Unlock()

	if kp, ok := keys[name]; ok {
		return kp
	}
	kp, err := cipher.GenerateKeyPair()
	require.NoError(t, err)
	keys[name] = kp
	return kp
}

// MakeUser returns a valid user with a real keypair.
func MakeUser(t testing.TB, username string) model.User {
	t.Helper()

	kp := KeyPair(t, username)
	return model.User{
		Username:       username,
		PasswordHash:   "hash",
		PublicKey:      kp.PublicKey,
		PrivateKey:     kp.PrivateKey,
		DisplayName:    username,
		Description:    "about " + username,
		PrimaryColor:   "#000000",
		SecondaryColor: "#FFFFFF",
		TertiaryColor:  "#DF0045",
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
