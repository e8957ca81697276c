package service

import (
	"context"
	"encoding/json"
	"mime/multipart"

	"sakhi-support-be/internal/dto"
	"sakhi-support-be/internal/entity"
	"sakhi-support-be/internal/pkg/logger"
	"sakhi-support-be/internal/pkg/serverutils"
	"sakhi-support-be/internal/pkg/storage"
	"sakhi-support-be/internal/repository/specification"
	"sakhi-support-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const statsCacheKey = "report_stats"

type ReportFileDownload struct {
	Path        string
	Name        string
	ContentType string
}

type IReportService interface {
	Create(ctx context.Context, req *dto.CreateReportRequest, files []*multipart.FileHeader) (*dto.ReportResponse, error)
	List(ctx context.Context, query *dto.ListReportsQuery) ([]*dto.ReportResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ReportResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ResolveFile(ctx context.Context, reportId uuid.UUID, fileId string) (*ReportFileDownload, error)
	Stats(ctx context.Context) (*dto.ReportStatsResponse, error)
}

type reportService struct {
	uowFactory       unitofwork.RepositoryFactory
	fileStore        *storage.LocalStore
	publisherService IPublisherService
	statsCache       *cache.Cache
	logger           logger.ILogger
}

func NewReportService(
	uowFactory unitofwork.RepositoryFactory,
	fileStore *storage.LocalStore,
	publisherService IPublisherService,
	statsCache *cache.Cache,
	log logger.ILogger,
) IReportService {
	return &reportService{
		uowFactory:       uowFactory,
		fileStore:        fileStore,
		publisherService: publisherService,
		statsCache:       statsCache,
		logger:           log,
	}
}

func toReportResponse(report *entity.Report) *dto.ReportResponse {
	files := report.Files
	if files == nil {
		files = []entity.ReportFile{}
	}
	return &dto.ReportResponse{
		Id:          report.Id,
		Name:        report.Name,
		Email:       report.Email,
		Phone:       report.Phone,
		Subject:     report.Subject,
		Description: report.Description,
		Files:       files,
		Status:      string(report.Status),
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
	}
}

func (s *reportService) Create(ctx context.Context, req *dto.CreateReportRequest, files []*multipart.FileHeader) (*dto.ReportResponse, error) {
	storedFiles := make([]entity.ReportFile, 0, len(files))
	for _, header := range files {
		// Browsers submit an empty file part when the picker is left blank.
		if header.Filename == "" {
			continue
		}
		src, err := header.Open()
		if err != nil {
			return nil, serverutils.NewValidationError("Could not read uploaded file: " + header.Filename)
		}

		meta, err := s.fileStore.Store(header.Filename, header.Header.Get("Content-Type"), src)
		src.Close()
		if err != nil {
			return nil, err
		}
		storedFiles = append(storedFiles, meta)
	}

	report := entity.Report{
		Id:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Description: req.Description,
		Files:       storedFiles,
		Status:      entity.ReportStatusPending,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ReportRepository().Create(ctx, &report); err != nil {
		return nil, err
	}

	s.statsCache.Delete(statsCacheKey)

	event := dto.ReportCreatedEvent{
		ReportId: report.Id,
		Name:     report.Name,
		Subject:  report.Subject,
	}
	payload, err := json.Marshal(event)
	if err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("ReportService", "Failed to publish report event", map[string]interface{}{
				"report_id": report.Id.String(),
				"error":     err.Error(),
			})
		}
	}

	s.logger.Info("ReportService", "Report submitted", map[string]interface{}{
		"report_id": report.Id.String(),
		"files":     len(storedFiles),
	})

	return toReportResponse(&report), nil
}

func (s *reportService) List(ctx context.Context, query *dto.ListReportsQuery) ([]*dto.ReportResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if query.StatusFilter != "" && query.StatusFilter != "all" {
		if !entity.ReportStatus(query.StatusFilter).Valid() {
			return nil, serverutils.NewValidationError("Invalid status filter")
		}
		specs = append(specs, specification.ByStatus{Status: query.StatusFilter})
	}
	if query.Search != "" {
		specs = append(specs, specification.ReportSearchQuery{Query: query.Search})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	reports, err := uow.ReportRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, toReportResponse(report))
	}
	return responses, nil
}

func (s *reportService) findReport(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Report, error) {
	report, err := uow.ReportRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, serverutils.NewNotFoundError("Report not found")
	}
	return report, nil
}

func (s *reportService) Get(ctx context.Context, id uuid.UUID) (*dto.ReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	report, err := s.findReport(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return toReportResponse(report), nil
}

func (s *reportService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error) {
	status := entity.ReportStatus(req.Status)
	if !status.Valid() {
		return nil, serverutils.NewValidationError("Invalid status. Must be one of: pending, reviewed, resolved")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	report, err := s.findReport(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	report.Status = status
	if err := uow.ReportRepository().Update(ctx, report); err != nil {
		return nil, err
	}

	s.statsCache.Delete(statsCacheKey)
	return toReportResponse(report), nil
}

func (s *reportService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findReport(ctx, uow, id); err != nil {
		return err
	}

	if err := uow.ReportRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.statsCache.Delete(statsCacheKey)
	return nil
}

func (s *reportService) ResolveFile(ctx context.Context, reportId uuid.UUID, fileId string) (*ReportFileDownload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	report, err := s.findReport(ctx, uow, reportId)
	if err != nil {
		return nil, err
	}

	for _, file := range report.Files {
		if file.Id != fileId {
			continue
		}
		if !s.fileStore.Exists(file.Filename) {
			return nil, serverutils.NewNotFoundError("File not found on server")
		}
		return &ReportFileDownload{
			Path:        s.fileStore.Path(file.Filename),
			Name:        file.Name,
			ContentType: file.Type,
		}, nil
	}

	return nil, serverutils.NewNotFoundError("File not found")
}

func (s *reportService) Stats(ctx context.Context) (*dto.ReportStatsResponse, error) {
	if cached, found := s.statsCache.Get(statsCacheKey); found {
		if stats, ok := cached.(*dto.ReportStatsResponse); ok {
			return stats, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ReportRepository()

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := repo.Count(ctx, specification.ByStatus{Status: string(entity.ReportStatusPending)})
	if err != nil {
		return nil, err
	}
	reviewed, err := repo.Count(ctx, specification.ByStatus{Status: string(entity.ReportStatusReviewed)})
	if err != nil {
		return nil, err
	}
	resolved, err := repo.Count(ctx, specification.ByStatus{Status: string(entity.ReportStatusResolved)})
	if err != nil {
		return nil, err
	}

	stats := &dto.ReportStatsResponse{
		Total:    total,
		Pending:  pending,
		Reviewed: reviewed,
		Resolved: resolved,
	}
	s.statsCache.Set(statsCacheKey, stats, cache.DefaultExpiration)
	return stats, nil
}
