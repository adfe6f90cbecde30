package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apierrors "github.com/yukikurage/shift-schedule-api/internal/errors"
)

// Health reports whether the API and its database are reachable.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			_ = c.Error(err)
			apierrors.ServiceUnavailable(c, "Database unavailable")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "ok",
			"message": "Shift Schedule API is running",
		})
	}
}
