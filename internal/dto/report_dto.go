package dto

import (
	"time"

	"sakhi-support-be/internal/entity"

	"github.com/google/uuid"
)

// CreateReportRequest mirrors the multipart form fields; files travel
// separately in the multipart body.
type CreateReportRequest struct {
	Name        string  `form:"name" validate:"required"`
	Email       string  `form:"email" validate:"required,email"`
	Phone       *string `form:"phone"`
	Subject     string  `form:"subject" validate:"required"`
	Description string  `form:"description" validate:"required"`
}

type ReportResponse struct {
	Id          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Phone       *string             `json:"phone"`
	Subject     string              `json:"subject"`
	Description string              `json:"description"`
	Files       []entity.ReportFile `json:"files"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type ListReportsQuery struct {
	StatusFilter string `query:"status_filter"`
	Search       string `query:"search"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ReportStatsResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Reviewed int64 `json:"reviewed"`
	Resolved int64 `json:"resolved"`
}

// ReportCreatedEvent is the payload published on the report-created topic.
type ReportCreatedEvent struct {
	ReportId uuid.UUID `json:"report_id"`
	Name     string    `json:"name"`
	Subject  string    `json:"subject"`
}
