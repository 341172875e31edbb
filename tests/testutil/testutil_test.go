package testutil

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMockDB(t *testing.T) {
	mockDB := NewMockDB(t)

	assert.NotNil(t, mockDB.DB)
	assert.NotNil(t, mockDB.Mock)
	mockDB.ExpectationsWereMet(t)
}

func TestNewSQLiteDB_Migrated(t *testing.T) {
	db := NewSQLiteDB(t)

	for _, table := range []string{"financial_records", "donations", "expenses", "designations", "gallery_items", "users"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestNewTestUUID_Deterministic(t *testing.T) {
	assert.Equal(t, NewTestUUID("admin"), NewTestUUID("admin"))
	assert.NotEqual(t, NewTestUUID("admin"), NewTestUUID("other"))
}

func TestDo_JSONRoundTrip(t *testing.T) {
	engine := gin.New()
	engine.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		require.NoError(t, c.ShouldBindJSON(&body))
		body["auth"] = c.GetHeader("Authorization")
		c.JSON(http.StatusCreated, body)
	})
	engine.GET("/fail", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "Expense not found"})
	})

	w := Do(t, engine, Request{Method: http.MethodPost, Path: "/echo", Body: map[string]any{"name": "Flowers"}, Token: "abc"})
	assert.Equal(t, http.StatusCreated, w.Code)
	body := JSONBody(t, w)
	assert.Equal(t, "Flowers", body["name"])
	assert.Equal(t, "Bearer abc", body["auth"])

	AssertError(t, Do(t, engine, Request{Path: "/fail"}), http.StatusNotFound, "NOT_FOUND", "Expense not found")
}

func TestAssertEventually(t *testing.T) {
	start := time.Now()
	AssertEventually(t, func() bool { return time.Since(start) > 20*time.Millisecond }, time.Second, 5*time.Millisecond)
}
