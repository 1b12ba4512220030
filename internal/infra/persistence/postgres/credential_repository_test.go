package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"brewlog/internal/domain/entity"
	"brewlog/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var credentialColumns = []string{"id", "user_id", "provider", "ciphertext", "iv", "tag", "created_at", "updated_at"}

func TestCredentialRepository_UpsertCredential(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	credential := &entity.StoredCredential{
		UserID:   uuid.New(),
		Provider: entity.ProviderOpenAI,
		Secret:   entity.SealedSecret{Ciphertext: []byte{1, 2, 3}, IV: make([]byte, 16), Tag: make([]byte, 16)},
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "provider_credentials"`) + `.*ON CONFLICT \("user_id","provider"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertCredential(context.Background(), credential))
	assert.NotEqual(t, uuid.Nil, credential.ID)
	assert.False(t, credential.CreatedAt.IsZero())
	assert.False(t, credential.UpdatedAt.IsZero())
}

func TestCredentialRepository_FindCredential(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	id := uuid.New()
	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "provider_credentials" WHERE user_id = $1 AND provider = $2`)).
		WithArgs(userID, "gemini", 1).
		WillReturnRows(sqlmock.NewRows(credentialColumns).
			AddRow(id.String(), userID.String(), "gemini", []byte("ct"), []byte("iv-iv-iv-iv-iv-1"), []byte("tag-tag-tag-tag1"), now, now))

	credential, err := repo.FindCredential(context.Background(), userID, entity.ProviderGemini)
	require.NoError(t, err)
	assert.Equal(t, id, credential.ID)
	assert.Equal(t, entity.ProviderGemini, credential.Provider)
	assert.Equal(t, []byte("ct"), credential.Secret.Ciphertext)
}

func TestCredentialRepository_FindCredentialNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "provider_credentials"`)).
		WillReturnRows(sqlmock.NewRows(credentialColumns))

	_, err := repo.FindCredential(context.Background(), uuid.New(), entity.ProviderOpenAI)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestCredentialRepository_ListCredentialsByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "provider_credentials" WHERE user_id = $1 ORDER BY provider ASC`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(credentialColumns).
			AddRow(uuid.NewString(), userID.String(), "anthropic", []byte("a"), []byte("b"), []byte("c"), now, now).
			AddRow(uuid.NewString(), userID.String(), "openai", []byte("d"), []byte("e"), []byte("f"), now, now))

	credentials, err := repo.ListCredentialsByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, credentials, 2)
	assert.Equal(t, entity.ProviderAnthropic, credentials[0].Provider)
	assert.Equal(t, entity.ProviderOpenAI, credentials[1].Provider)
}

func TestCredentialRepository_DeleteCredential(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "provider_credentials" WHERE user_id = $1 AND provider = $2`)).
		WithArgs(userID, "openai").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "provider_credentials"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteCredential(context.Background(), userID, entity.ProviderOpenAI))
	assert.ErrorIs(t, repo.DeleteCredential(context.Background(), userID, entity.ProviderOpenAI), repository.ErrCredentialNotFound)
}
