package specification

import "gorm.io/gorm"

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ReportSearchQuery matches the term case-insensitively across the submitter
// and free-text fields, ORed together.
type ReportSearchQuery struct {
	Query string
}

func (s ReportSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where(
		"name ILIKE ? OR email ILIKE ? OR subject ILIKE ? OR description ILIKE ?",
		pattern, pattern, pattern, pattern,
	)
}
