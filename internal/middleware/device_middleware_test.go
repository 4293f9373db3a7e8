package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDeviceID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() (*gin.Engine, *string) {
		r := gin.New()
		var captured string
		r.GET("/probe", middleware.DeviceID(), func(c *gin.Context) {
			captured = c.GetString("device_id")
			c.Status(http.StatusOK)
		})
		return r, &captured
	}

	t.Run("sets_device_id_from_header", func(t *testing.T) {
		r, captured := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-Device-ID", "device-42")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "device-42", *captured)
	})

	t.Run("missing_header_rejected", func(t *testing.T) {
		r, _ := newRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/probe", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("generates_when_absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("echoes_when_present", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-Request-ID", "req-7")

		r.ServeHTTP(w, req)

		assert.Equal(t, "req-7", w.Header().Get("X-Request-ID"))
	})
}
