package mapper

import (
	"testing"

	"sakhi-support-be/internal/entity"
	"sakhi-support-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestReportMapperRoundtrip(t *testing.T) {
	m := NewReportMapper()
	phone := "+91 98765 43210"

	report := &entity.Report{
		Id:          uuid.New(),
		Name:        "Asha",
		Email:       "asha@example.com",
		Phone:       &phone,
		Subject:     "Workplace harassment",
		Description: "Details of the incident",
		Files: []entity.ReportFile{
			{Id: "f1", Name: "proof.png", Filename: "abc.png", Size: 1024, Type: "image/png"},
		},
		Status: entity.ReportStatusPending,
	}

	got := m.ToEntity(m.ToModel(report))

	assert.Equal(t, report.Id, got.Id)
	assert.Equal(t, report.Phone, got.Phone)
	assert.Equal(t, report.Files, got.Files)
	assert.Equal(t, entity.ReportStatusPending, got.Status)
}

func TestReportMapperNilFilesBecomesEmptyList(t *testing.T) {
	m := NewReportMapper()

	mdl := m.ToModel(&entity.Report{Id: uuid.New(), Files: nil})
	assert.Equal(t, "[]", string(mdl.Files))

	got := m.ToEntity(mdl)
	assert.NotNil(t, got.Files)
	assert.Empty(t, got.Files)
}

func TestReportMapperCorruptFilesDegradesToEmpty(t *testing.T) {
	m := NewReportMapper()

	got := m.ToEntity(&model.Report{
		Id:    uuid.New(),
		Files: datatypes.JSON(`{"not":"an array`),
	})

	assert.NotNil(t, got.Files)
	assert.Empty(t, got.Files)
}

func TestReportMapperNil(t *testing.T) {
	m := NewReportMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
