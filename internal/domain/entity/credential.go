package entity

import (
	"time"

	"github.com/google/uuid"
)

// SealedSecret is the output of the credential vault. All three parts are required to open it.
type SealedSecret struct {
	Ciphertext []byte
	IV         []byte
	Tag        []byte
}

// StoredCredential is a user-supplied provider key sealed at rest.
// There is at most one per (UserID, Provider).
type StoredCredential struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Provider  ProviderID
	Secret    SealedSecret
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CredentialView is the masked projection of a StoredCredential shown to its owner.
type CredentialView struct {
	Provider  ProviderID `json:"provider"`
	Masked    string     `json:"masked"`
	UpdatedAt time.Time  `json:"updated_at"`
}
