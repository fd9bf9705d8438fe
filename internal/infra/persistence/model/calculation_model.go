package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CalculationModel mirrors the 'calculations' table. Inputs are stored as a
// JSONB array so the operand list keeps its order and arbitrary length.
type CalculationModel struct {
	ID        uuid.UUID                    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID                    `gorm:"type:uuid;not null;index"`
	Operation string                       `gorm:"type:varchar(20);not null"`
	Inputs    datatypes.JSONSlice[float64] `gorm:"type:jsonb;not null"`
	Result    float64                      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CalculationModel) TableName() string {
	return "calculations"
}
