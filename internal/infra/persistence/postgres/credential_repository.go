// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/repository"
	"brewlog/internal/errors"
	"brewlog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// UpsertCredential stores a sealed key, replacing the sealed parts when the user already has one for the provider.
func (repo *credentialRepository) UpsertCredential(ctx context.Context, credential *entity.StoredCredential) error {
	if credential.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate credential ID")
		}
		credential.ID = id
	}

	now := time.Now().UTC()
	if credential.CreatedAt.IsZero() {
		credential.CreatedAt = now
	}
	credential.UpdatedAt = now

	credentialM := fromCredentialDomain(credential)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{"ciphertext", "iv", "tag", "updated_at"}),
		}).
		Create(credentialM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert credential")
	}

	return nil
}

// FindCredential retrieves the sealed key a user stored for a provider.
func (repo *credentialRepository) FindCredential(ctx context.Context, userID uuid.UUID, provider entity.ProviderID) (*entity.StoredCredential, error) {
	var credentialM model.ProviderCredentialModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return toCredentialDomain(&credentialM), nil
}

// ListCredentialsByUser retrieves every sealed key of a user, ordered by provider.
func (repo *credentialRepository) ListCredentialsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.StoredCredential, error) {
	var credentialModels []*model.ProviderCredentialModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("provider ASC").
		Find(&credentialModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list credentials by user")
	}

	credentials := make([]*entity.StoredCredential, 0, len(credentialModels))
	for _, credentialM := range credentialModels {
		credentials = append(credentials, toCredentialDomain(credentialM))
	}

	return credentials, nil
}

// DeleteCredential removes a sealed key. Rows are deleted outright, never soft-deleted.
func (repo *credentialRepository) DeleteCredential(ctx context.Context, userID uuid.UUID, provider entity.ProviderID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		Delete(&model.ProviderCredentialModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete credential")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCredentialDomain converts a GORM ProviderCredentialModel to a domain StoredCredential entity.
func toCredentialDomain(data *model.ProviderCredentialModel) *entity.StoredCredential {
	if data == nil {
		return nil
	}

	return &entity.StoredCredential{
		ID:       data.ID,
		UserID:   data.UserID,
		Provider: entity.ProviderID(data.Provider),
		Secret: entity.SealedSecret{
			Ciphertext: data.Ciphertext,
			IV:         data.IV,
			Tag:        data.Tag,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCredentialDomain converts a domain StoredCredential entity to a GORM ProviderCredentialModel.
func fromCredentialDomain(data *entity.StoredCredential) *model.ProviderCredentialModel {
	if data == nil {
		return nil
	}

	return &model.ProviderCredentialModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Provider:   data.Provider.String(),
		Ciphertext: data.Secret.Ciphertext,
		IV:         data.Secret.IV,
		Tag:        data.Secret.Tag,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
