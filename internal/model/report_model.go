package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Report struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Email       string         `gorm:"type:varchar(255);not null"`
	Phone       *string        `gorm:"type:varchar(50)"`
	Subject     string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text;not null"`
	Files       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Status      string         `gorm:"type:varchar(50);not null;default:'pending';index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Report) TableName() string {
	return "reports"
}
