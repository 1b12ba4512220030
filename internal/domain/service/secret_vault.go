package service

import "brewlog/internal/domain/entity"

// SecretVault seals and opens user-supplied provider keys.
type SecretVault interface {
	// Encrypt seals plaintext with a fresh IV.
	Encrypt(plaintext string) (entity.SealedSecret, error)

	// Decrypt opens a sealed secret, failing with ErrIntegrity on any tampering.
	Decrypt(sealed entity.SealedSecret) (string, error)

	// Mask renders plaintext for display without revealing it.
	Mask(plaintext string) string
}
