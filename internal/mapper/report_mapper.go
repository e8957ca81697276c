package mapper

import (
	"encoding/json"

	"sakhi-support-be/internal/entity"
	"sakhi-support-be/internal/model"

	"gorm.io/datatypes"
)

type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ToEntity(r *model.Report) *entity.Report {
	if r == nil {
		return nil
	}

	files := []entity.ReportFile{}
	if len(r.Files) > 0 {
		// Corrupt metadata degrades to an empty list rather than failing reads.
		_ = json.Unmarshal(r.Files, &files)
	}

	return &entity.Report{
		Id:          r.Id,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Subject:     r.Subject,
		Description: r.Description,
		Files:       files,
		Status:      entity.ReportStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *ReportMapper) ToModel(r *entity.Report) *model.Report {
	if r == nil {
		return nil
	}

	files := r.Files
	if files == nil {
		files = []entity.ReportFile{}
	}
	raw, _ := json.Marshal(files)

	return &model.Report{
		Id:          r.Id,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Subject:     r.Subject,
		Description: r.Description,
		Files:       datatypes.JSON(raw),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *ReportMapper) ToEntities(reports []*model.Report) []*entity.Report {
	entities := make([]*entity.Report, len(reports))
	for i, r := range reports {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
