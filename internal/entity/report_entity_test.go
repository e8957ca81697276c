package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportStatusValid(t *testing.T) {
	assert.True(t, ReportStatusPending.Valid())
	assert.True(t, ReportStatusReviewed.Valid())
	assert.True(t, ReportStatusResolved.Valid())
	assert.False(t, ReportStatus("archived").Valid())
	assert.False(t, ReportStatus("").Valid())
}
