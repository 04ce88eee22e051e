// Package validation checks user supplied account and message fields.
package validation

import "strings"

const (
	usernameMinLen = 4
	usernameMaxLen = 16
	passwordMinLen = 5
	passwordMaxLen = 16
	colorLen       = 7

	// MaxMessageBytes is the PKCS#1 v1.5 capacity of a 2048-bit RSA key.
	MaxMessageBytes = 245

	usernameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@_:.;"
	hexAlphabet      = "0123456789ABCDEF"
)

// Username accepts 4 to 16 lowercase ASCII letters or digits.
func Username(s string) bool {
	return inRange(len(s), usernameMinLen, usernameMaxLen) && onlyFrom(s, usernameAlphabet)
}

// Password accepts 5 to 16 characters of letters, digits and @_:.;
func Password(s string) bool {
	return inRange(len(s), passwordMinLen, passwordMaxLen) && onlyFrom(s, passwordAlphabet)
}

// Color accepts "#RRGGBB" with uppercase hex digits only.
func Color(s string) bool {
	if len(s) != colorLen || s[0] != '#' {
		return false
	}
	return onlyFrom(s[1:], hexAlphabet)
}

// Message accepts plaintexts that fit into a single RSA block.
func Message(s string) bool {
	return len(s) <= MaxMessageBytes
}

func inRange(n, lo, hi int) bool {
	return n >= lo && n <= hi
}

func onlyFrom(s, alphabet string) bool {
	for _, r := range s {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}
