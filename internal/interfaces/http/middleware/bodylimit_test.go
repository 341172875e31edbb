package middleware

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/dto"
	"github.com/praveenjayakumarramesh/st-joseph-church/tests/testutil"
	"github.com/stretchr/testify/assert"
)

func newBodyLimitRouter(limit int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(BodyLimit(limit))
	router.POST("/api/expenses", func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size"))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"bytes": len(data)})
	})
	router.GET("/api/expenses", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"expenses": []any{}})
	})
	return router
}

func TestBodyLimit(t *testing.T) {
	expense := `{"name":"Flowers","amount":"150","function":"Feast"}`

	t.Run("expense within the limit is created", func(t *testing.T) {
		w := testutil.Do(t, newBodyLimitRouter(1024), testutil.Request{
			Method: http.MethodPost,
			Path:   "/api/expenses",
			Body:   expense,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(len(expense)), testutil.JSONBody(t, w)["bytes"])
	})

	t.Run("declared length over the limit is refused before the handler", func(t *testing.T) {
		w := testutil.Do(t, newBodyLimitRouter(16), testutil.Request{
			Method: http.MethodPost,
			Path:   "/api/expenses",
			Body:   expense,
		})

		testutil.AssertError(t, w, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
		assert.NotContains(t, w.Body.String(), "bytes")
	})

	t.Run("streamed body is cut at the limit", func(t *testing.T) {
		router := newBodyLimitRouter(32)
		req := testutil.Request{
			Method: http.MethodPost,
			Path:   "/api/expenses",
			Body:   `{"name":"` + strings.Repeat("x", 100) + `"}`,
		}
		w := testutil.Do(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			r.ContentLength = -1
			router.ServeHTTP(rw, r)
		}), req)

		testutil.AssertError(t, w, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "")
	})

	t.Run("reads are not limited", func(t *testing.T) {
		w := testutil.Do(t, newBodyLimitRouter(1), testutil.Request{Path: "/api/expenses"})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
