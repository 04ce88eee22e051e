package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// hashString returns the uppercase hex SHA-256 of s.
func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC1123Z)
}

// newID hashes parts with the timestamp. A random uuid is mixed in, since
// the timestamp only has second resolution.
func newID(now time.Time, parts ...string) string {
	return hashString(strings.Join(parts, "") + timestamp(now) + uuid.NewString())
}

// fileKey is the storage key of a user's file.
func fileKey(owner, fileID string) string {
	return fmt.Sprintf("user-%s/file-%s", owner, fileID)
}
