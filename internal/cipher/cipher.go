// Package cipher implements the per-account RSA message scheme: 2048-bit keys,
// PKCS#1 v1.5 encryption padding and base64 transport encoding.
package cipher

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"unicode/utf8"
)

// KeyBits is the modulus size of every account keypair.
const KeyBits = 2048

const (
	pkcs1Overhead = 11

	pemPKCS1Public  = "RSA PUBLIC KEY"
	pemPKIXPublic   = "PUBLIC KEY"
	pemPKCS1Private = "RSA PRIVATE KEY"
	pemPKCS8Private = "PRIVATE KEY"
)

var (
	ErrKeyFormat       = errors.New("malformed key")
	ErrPayloadTooLarge = errors.New("payload too large for key")
	ErrDecode          = errors.New("malformed ciphertext encoding")
	ErrDecrypt         = errors.New("decryption failed")
)

// KeyPair holds PEM encoded keys. PublicKey is PKCS#1, PrivateKey is PKCS#8.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}

// GenerateKeyPair creates a fresh RSA keypair.
func GenerateKeyPair() (KeyPair, error) {
	key, err := rsa.GenerateKey(rand.Reader, KeyBits)
	if err != nil {
		return KeyPair{}, fmt.Errorf("failed to generate rsa key: %w", err)
	}

	privateDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return KeyPair{}, fmt.Errorf("failed to marshal private key: %w", err)
	}

	publicPEM := pem.EncodeToMemory(&pem.Block{Type: pemPKCS1Public, Bytes: x509.MarshalPKCS1PublicKey(&key.PublicKey)})
	privatePEM := pem.EncodeToMemory(&pem.Block{Type: pemPKCS8Private, Bytes: privateDER})

	return KeyPair{PublicKey: string(publicPEM), PrivateKey: string(privatePEM)}, nil
}

// MaxPlaintext returns how many bytes a key can encrypt in one block.
func MaxPlaintext(pub *rsa.PublicKey) int {
	return pub.Size() - pkcs1Overhead
}

// Encrypt encrypts plaintext under a PEM public key and returns base64 ciphertext.
func Encrypt(plaintext, publicKeyPEM string) (string, error) {
	pub, err := ParsePublicKey(publicKeyPEM)
	if err != nil {
		return "", err
	}

	if limit := MaxPlaintext(pub); len(plaintext) > limit {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(plaintext), limit)
	}

	out, err := rsa.EncryptPKCS1v15(rand.Reader, pub, []byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt message: %w", err)
	}

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt with the matching PEM private key.
func Decrypt(ciphertext, privateKeyPEM string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	priv, err := ParsePrivateKey(privateKeyPEM)
	if err != nil {
		return "", err
	}

	out, err := rsa.DecryptPKCS1v15(rand.Reader, priv, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrDecrypt)
	}

	return string(out), nil
}

// ParsePublicKey reads a PKCS#1 or PKIX PEM public key.
func ParsePublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, fmt.Errorf("%w: no pem block", ErrKeyFormat)
	}

	switch block.Type {
	case pemPKCS1Public:
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
		}
		return pub, nil
	case pemPKIXPublic:
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
		}
		pub, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an rsa key", ErrKeyFormat)
		}
		return pub, nil
	default:
		return nil, fmt.Errorf("%w: unexpected pem type %q", ErrKeyFormat, block.Type)
	}
}

// ParsePrivateKey reads a PKCS#8 or PKCS#1 PEM private key.
func ParsePrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(privateKeyPEM))
	if block == nil {
		return nil, fmt.Errorf("%w: no pem block", ErrKeyFormat)
	}

	switch block.Type {
	case pemPKCS8Private:
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
		}
		priv, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an rsa key", ErrKeyFormat)
		}
		return priv, nil
	case pemPKCS1Private:
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
		}
		return priv, nil
	default:
		return nil, fmt.Errorf("%w: unexpected pem type %q", ErrKeyFormat, block.Type)
	}
}
