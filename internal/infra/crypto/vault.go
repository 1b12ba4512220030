// Package crypto seals user-supplied provider keys at rest.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"
	"unicode/utf8"

	"brewlog/config"
	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/service"
)

const (
	keySize = 32
	ivSize  = 16
	tagSize = 16

	visibleEdge      = 4
	minMaskableRunes = 13
	maskPlaceholder  = "••••••••••••"
	maskFill         = "••••••••"
)

// vault implements service.SecretVault with AES-256-GCM and a 128-bit IV.
type vault struct {
	aead   cipher.AEAD
	random io.Reader
}

// NewVault builds the vault from the hex encoded master key in config.
func NewVault(cfg *config.Config) (service.SecretVault, error) {
	encoded := strings.TrimSpace(cfg.Vault.MasterKey)
	if encoded == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("vault master key is not set")
	}

	key, err := hex.DecodeString(encoded)
	if err != nil {
		// the decode error echoes the offending byte, so it is dropped
		return nil, domainerrors.ErrConfiguration.WrapMessage("vault master key is not valid hex")
	}

	return newVault(key, rand.Reader)
}

func newVault(key []byte, random io.Reader) (*vault, error) {
	if len(key) != keySize {
		return nil, domainerrors.ErrConfiguration.WrapMessage("vault master key must be 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, domainerrors.ErrConfiguration.WrapMessage("vault cipher init failed")
	}

	aead, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, domainerrors.ErrConfiguration.WrapMessage("vault gcm init failed")
	}

	return &vault{aead: aead, random: random}, nil
}

// Encrypt seals plaintext under a fresh random IV and splits off the tag.
func (v *vault) Encrypt(plaintext string) (entity.SealedSecret, error) {
	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(v.random, iv); err != nil {
		return entity.SealedSecret{}, domainerrors.ErrInternalError.WrapMessage("vault iv generation failed")
	}

	// Seal returns ciphertext || tag.
	sealed := v.aead.Seal(nil, iv, []byte(plaintext), nil)
	split := len(sealed) - tagSize

	return entity.SealedSecret{
		Ciphertext: sealed[:split],
		IV:         iv,
		Tag:        sealed[split:],
	}, nil
}

// Decrypt opens a sealed secret. Every failure is ErrIntegrity.
func (v *vault) Decrypt(sealed entity.SealedSecret) (string, error) {
	if len(sealed.IV) != ivSize || len(sealed.Tag) != tagSize {
		return "", domainerrors.ErrIntegrity
	}

	buf := make([]byte, 0, len(sealed.Ciphertext)+tagSize)
	buf = append(buf, sealed.Ciphertext...)
	buf = append(buf, sealed.Tag...)

	plaintext, err := v.aead.Open(nil, sealed.IV, buf, nil)
	if err != nil {
		return "", domainerrors.ErrIntegrity
	}

	return string(plaintext), nil
}

// Mask shows the first and last four characters. Inputs of twelve characters or
// fewer collapse to a fixed placeholder.
func (v *vault) Mask(plaintext string) string {
	return Mask(plaintext)
}

// Mask is the package-level form of vault.Mask for callers that hold no key.
func Mask(plaintext string) string {
	if utf8.RuneCountInString(plaintext) < minMaskableRunes {
		return maskPlaceholder
	}

	runes := []rune(plaintext)

	return string(runes[:visibleEdge]) + maskFill + string(runes[len(runes)-visibleEdge:])
}
