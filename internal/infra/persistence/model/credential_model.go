package model

import (
	"time"

	"github.com/google/uuid"
)

// ProviderCredentialModel is the GORM-specific struct for the 'provider_credentials' table.
// Rows hold sealed keys only; the plaintext never reaches the database.
type ProviderCredentialModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_provider_credentials_user_provider,priority:1"`
	Provider   string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_provider_credentials_user_provider,priority:2"`
	Ciphertext []byte    `gorm:"type:bytea;not null"`
	IV         []byte    `gorm:"column:iv;type:bytea;not null"`
	Tag        []byte    `gorm:"type:bytea;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderCredentialModel) TableName() string {
	return "provider_credentials"
}
