package controller

import (
	"mime/multipart"
	"os"

	"sakhi-support-be/internal/dto"
	"sakhi-support-be/internal/pkg/serverutils"
	"sakhi-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	DownloadFile(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reports")
	h.Post("", c.Create)
	h.Get("", c.List)
	// Static segment before the :id wildcard.
	h.Get("/stats/summary", c.Stats)
	h.Get("/:id", c.Show)
	h.Patch("/:id/status", c.UpdateStatus)
	h.Delete("/:id", c.Delete)
	h.Get("/:id/files/:fileId", c.DownloadFile)
}

func reportIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.NewValidationError("Invalid report id")
	}
	return id, nil
}

func (c *reportController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Attachments are optional; a plain form post has no multipart body.
	var uploads []*multipart.FileHeader
	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		uploads = form.File["files"]
	}

	res, err := c.reportService.Create(ctx.Context(), &req, uploads)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit report", res))
}

func (c *reportController) List(ctx *fiber.Ctx) error {
	query := dto.ListReportsQuery{
		StatusFilter: ctx.Query("status_filter"),
		Search:       ctx.Query("search"),
	}

	res, err := c.reportService.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get reports", res))
}

func (c *reportController) Stats(ctx *fiber.Ctx) error {
	res, err := c.reportService.Stats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get report stats", res))
}

func (c *reportController) Show(ctx *fiber.Ctx) error {
	id, err := reportIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.reportService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get report", res))
}

func (c *reportController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := reportIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateReportStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reportService.UpdateStatus(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update report status", res))
}

func (c *reportController) Delete(ctx *fiber.Ctx) error {
	id, err := reportIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.reportService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete report", nil))
}

func (c *reportController) DownloadFile(ctx *fiber.Ctx) error {
	id, err := reportIdParam(ctx)
	if err != nil {
		return err
	}
	fileId := ctx.Params("fileId")

	download, err := c.reportService.ResolveFile(ctx.Context(), id, fileId)
	if err != nil {
		return err
	}

	f, err := os.Open(download.Path)
	if err != nil {
		return serverutils.NewNotFoundError("File not found on server")
	}

	ctx.Set(fiber.HeaderContentType, download.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+download.Name+`"`)
	return ctx.SendStream(f)
}
