package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReviewed ReportStatus = "reviewed"
	ReportStatusResolved ReportStatus = "resolved"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved:
		return true
	}
	return false
}

// ReportFile describes one uploaded attachment. Filename is the generated
// on-disk name, Name the original one the submitter used.
type ReportFile struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

type Report struct {
	Id          uuid.UUID
	Name        string
	Email       string
	Phone       *string
	Subject     string
	Description string
	Files       []ReportFile
	Status      ReportStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
