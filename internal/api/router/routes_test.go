package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStrictApp tạo app với cấu hình routing giống server thật
// (StrictRouting bật nên "/x" và "/x/" là hai route khác nhau).
func newStrictApp() *fiber.App {
	return fiber.New(fiber.Config{
		StrictRouting: true,
		CaseSensitive: true,
	})
}

func ok(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

// Route đăng ký với path rỗng phải khớp đúng prefix trần, không có dấu "/" cuối.
func TestRegisterRouteWithMiddleware_BarePrefix_StrictRouting(t *testing.T) {
	app := newStrictApp()
	v1 := app.Group("/api/v1")

	none := []fiber.Handler{}
	RegisterRouteWithMiddleware(v1, "/library", "GET", "", none, ok)
	RegisterRouteWithMiddleware(v1, "/library", "GET", "/:campaignId", none, ok)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/library", nil))
	require.NoError(t, err, "Gọi route không được lỗi")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "GET /api/v1/library phải khớp route đăng ký với path rỗng")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/library/68b1c2d3e4f5a6b7c8d9e0f1", nil))
	require.NoError(t, err, "Gọi route không được lỗi")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "Route con theo param vẫn phải khớp")
}

// Các route con tương đối vẫn khớp dưới prefix khi StrictRouting bật.
func TestRegisterRouteWithMiddleware_Subpaths_StrictRouting(t *testing.T) {
	app := newStrictApp()
	v1 := app.Group("/api/v1")

	none := []fiber.Handler{}
	RegisterRouteWithMiddleware(v1, "/generate", "POST", "/caption", none, ok)
	RegisterRouteWithMiddleware(v1, "/library", "DELETE", "/:id", none, ok)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/generate/caption", nil))
	require.NoError(t, err, "Gọi route không được lỗi")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "POST /api/v1/generate/caption phải khớp")

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/library/68b1c2d3e4f5a6b7c8d9e0f1", nil))
	require.NoError(t, err, "Gọi route không được lỗi")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "DELETE /api/v1/library/:id phải khớp")
}
