package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BeanAnalysisModel is the GORM-specific struct for the 'bean_analyses' table.
// The normalized result is stored as a jsonb document; Identified and BeanType are copied out for filtering.
type BeanAnalysisModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerUserID uuid.UUID      `gorm:"type:uuid;not null;index:idx_bean_analyses_owner_created,priority:1"`
	ImageRef    string         `gorm:"type:text;not null"`
	Provider    string         `gorm:"type:varchar(32);not null"`
	CoffeeID    *uuid.UUID     `gorm:"type:uuid"`
	Identified  bool           `gorm:"not null"`
	BeanType    string         `gorm:"type:varchar(200)"`
	Result      datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"index:idx_bean_analyses_owner_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (BeanAnalysisModel) TableName() string {
	return "bean_analyses"
}
