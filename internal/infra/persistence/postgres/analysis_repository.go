package postgres

import (
	"context"
	"encoding/json"
	"time"

	"brewlog/internal/domain/entity"
	domainerrors "brewlog/internal/domain/errors"
	"brewlog/internal/domain/repository"
	"brewlog/internal/errors"
	"brewlog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// analysisRepository implements the repository.AnalysisRepository interface.
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository is the constructor for analysisRepository.
func NewAnalysisRepository(db *gorm.DB) repository.AnalysisRepository {
	return &analysisRepository{
		db: db,
	}
}

// CreateAnalysis persists a new analysis record.
func (repo *analysisRepository) CreateAnalysis(ctx context.Context, record *entity.AnalysisRecord) error {
	if record.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate analysis ID")
		}
		record.ID = id
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	analysisM, err := fromAnalysisDomain(record)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(analysisM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("analysis already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required analysis information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create analysis")
	}

	return nil
}

// FindAnalysisByID retrieves a record owned by ownerID.
func (repo *analysisRepository) FindAnalysisByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.AnalysisRecord, error) {
	var analysisM model.BeanAnalysisModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_user_id = ?", id, ownerID).
		First(&analysisM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnalysisNotFound
		}

		return nil, errors.Wrap(err, "failed to find analysis by ID")
	}

	return toAnalysisDomain(&analysisM)
}

// ListAnalysesByOwner retrieves the newest records of an owner.
func (repo *analysisRepository) ListAnalysesByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.AnalysisRecord, error) {
	var analysisModels []*model.BeanAnalysisModel

	if err := repo.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&analysisModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list analyses by owner")
	}

	records := make([]*entity.AnalysisRecord, 0, len(analysisModels))
	for _, analysisM := range analysisModels {
		record, err := toAnalysisDomain(analysisM)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// LinkCoffee attaches a catalog coffee to a record owned by ownerID.
func (repo *analysisRepository) LinkCoffee(ctx context.Context, ownerID, id, coffeeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BeanAnalysisModel{}).
		Where("id = ? AND owner_user_id = ?", id, ownerID).
		Update("coffee_id", coffeeID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to link coffee to analysis")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAnalysisNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAnalysisDomain converts a GORM BeanAnalysisModel to a domain AnalysisRecord entity.
func toAnalysisDomain(data *model.BeanAnalysisModel) (*entity.AnalysisRecord, error) {
	if data == nil {
		return nil, nil
	}

	var result entity.AnalysisResult
	if err := json.Unmarshal(data.Result, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to decode result of analysis %s", data.ID)
	}

	return &entity.AnalysisRecord{
		ID:          data.ID,
		OwnerUserID: data.OwnerUserID,
		ImageRef:    data.ImageRef,
		Provider:    entity.ProviderID(data.Provider),
		CoffeeID:    data.CoffeeID,
		Result:      result,
		CreatedAt:   data.CreatedAt,
	}, nil
}

// fromAnalysisDomain converts a domain AnalysisRecord entity to a GORM BeanAnalysisModel.
func fromAnalysisDomain(data *entity.AnalysisRecord) (*model.BeanAnalysisModel, error) {
	encoded, err := json.Marshal(data.Result)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode analysis result")
	}

	return &model.BeanAnalysisModel{
		ID:          data.ID,
		OwnerUserID: data.OwnerUserID,
		ImageRef:    data.ImageRef,
		Provider:    data.Provider.String(),
		CoffeeID:    data.CoffeeID,
		Identified:  data.Result.Identified,
		BeanType:    data.Result.BeanType,
		Result:      datatypes.JSON(encoded),
		CreatedAt:   data.CreatedAt,
	}, nil
}
