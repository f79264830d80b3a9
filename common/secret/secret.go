// Package secret encrypts credentials at rest with NaCl secretbox.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrDecrypt = errors.New("secret: ciphertext could not be opened")

// Box seals and opens values with a single 32-byte key.
type Box struct {
	key [32]byte
}

func NewBox(key [32]byte) *Box {
	return &Box{key: key}
}

// Encrypt returns base64(nonce || sealed).
func (b *Box) Encrypt(plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &b.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (b *Box) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrDecrypt
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrDecrypt
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	opened, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", ErrDecrypt
	}
	return string(opened), nil
}

// EncryptPtr encrypts an optional value, keeping nil as nil.
func (b *Box) EncryptPtr(plaintext *string) (*string, error) {
	if plaintext == nil {
		return nil, nil
	}
	out, err := b.Encrypt(*plaintext)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DecryptPtr decrypts an optional value, keeping nil as nil.
func (b *Box) DecryptPtr(ciphertext *string) (*string, error) {
	if ciphertext == nil {
		return nil, nil
	}
	out, err := b.Decrypt(*ciphertext)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Hint returns the last four characters of a secret, the only part ever shown to clients.
func Hint(secret string) string {
	r := []rune(secret)
	if len(r) <= 4 {
		return "****"
	}
	return "..." + string(r[len(r)-4:])
}
