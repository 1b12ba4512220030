package model

import "time"

// UsageCounterModel is the GORM-specific struct for the 'usage_counters' table.
// One row per quota identity per calendar day.
type UsageCounterModel struct {
	IdentityKind  string    `gorm:"type:varchar(16);primaryKey"`
	IdentityValue string    `gorm:"type:varchar(128);primaryKey"`
	Day           time.Time `gorm:"type:date;primaryKey;index"`
	Count         int       `gorm:"not null;default:0;check:count >= 0"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UsageCounterModel) TableName() string {
	return "usage_counters"
}
