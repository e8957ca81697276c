package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type validatedReq struct {
	Email string `validate:"required,email"`
}

func performRequest(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandlerTranslatesAppError(t *testing.T) {
	status, body := performRequest(t, func(ctx *fiber.Ctx) error {
		return NewNotFoundError("Report not found")
	})

	assert.Equal(t, 404, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Report not found", body["message"])
}

func TestErrorHandlerTranslatesValidationErrors(t *testing.T) {
	status, body := performRequest(t, func(ctx *fiber.Ctx) error {
		return ValidateRequest(validatedReq{Email: "not-an-email"})
	})

	assert.Equal(t, 400, status)
	assert.Equal(t, false, body["success"])
}

func TestErrorHandlerDefaultsTo500(t *testing.T) {
	status, body := performRequest(t, func(ctx *fiber.Ctx) error {
		return errors.New("database exploded")
	})

	assert.Equal(t, 500, status)
	assert.Contains(t, body["message"], "database exploded")
}

func TestErrorHandlerPassesSuccessThrough(t *testing.T) {
	status, body := performRequest(t, func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", fiber.Map{"value": 1}))
	})

	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
}
