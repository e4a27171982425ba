package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"agapept/internal/domain"
	"agapept/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handlerErr error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger())
	app.Get("/fail", func(c *fiber.Ctx) error { return handlerErr })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"id": RequestID(c)}) })
	return app
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantCode   string
	}{
		{
			name:       "validation errors",
			err:        domain.ValidationErrors{domain.NewMissingFieldError("name")},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid payload",
			wantCode:   string(domain.CodeValidation),
		},
		{
			name:       "submission not found",
			err:        domain.NewSubmissionNotFoundError(9),
			wantStatus: http.StatusNotFound,
			wantError:  "Submission not found with ID: 9",
			wantCode:   string(domain.CodeSubmissionNotFound),
		},
		{
			name:       "invalid input",
			err:        domain.NewInvalidInputError("bad"),
			wantStatus: http.StatusBadRequest,
			wantError:  "bad",
			wantCode:   string(domain.CodeInvalidInput),
		},
		{
			name:       "internal error hides cause",
			err:        domain.NewInternalError("failed to store submission", errors.New("database is locked")),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Server error",
		},
		{
			name:       "fiber error",
			err:        fiber.NewError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantError:  "Request Entity Too Large",
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("nil pointer somewhere"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.err)
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	app := newTestApp(domain.ValidationErrors{
		domain.NewMissingFieldError("name"),
		domain.NewOutOfRangeError("age", 0, 1, 150),
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)

	body := decodeError(t, resp)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "name", body.Errors[0].Field)
	assert.Equal(t, domain.CodeOutOfRange, body.Errors[1].Code)
}

func TestErrorHandler_NotFoundDetails(t *testing.T) {
	app := newTestApp(domain.NewSubmissionNotFoundError(9))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)

	body := decodeError(t, resp)
	assert.Equal(t, float64(9), body.Details["id"])
}

func TestRequestLogger_AssignsRequestID(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)

	id := resp.Header.Get(RequestIDHeader)
	assert.Len(t, id, 26)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id, body["id"])
}

func TestRequestLogger_ReusesIncomingID(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "client-supplied", resp.Header.Get(RequestIDHeader))
}

func TestRequestLogger_ErrorStatusIsWrittenOnce(t *testing.T) {
	app := newTestApp(domain.NewSubmissionNotFoundError(1))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}
