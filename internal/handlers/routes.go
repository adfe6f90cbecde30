package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes mounts the health check and the /api tree on r.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, users *UserHandler, schedules *ScheduleHandler) {
	r.GET("/health", Health(db))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", users.Register)
		}

		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", users.ListUsers)
			userRoutes.GET("/:id", users.GetUser)
			userRoutes.DELETE("/:id", users.DeleteUser)
			userRoutes.PATCH("/:id/department", users.ChangeDepartment)
		}

		scheduleRoutes := api.Group("/schedules")
		{
			scheduleRoutes.GET("", schedules.ListSchedules)
			scheduleRoutes.POST("", schedules.SaveSchedule)
			scheduleRoutes.GET("/weeks", schedules.ListWeeks)
			scheduleRoutes.POST("/duplicate", schedules.DuplicateWeek)
			scheduleRoutes.POST("/confirm", schedules.ConfirmWeek)
			scheduleRoutes.PATCH("/:id", schedules.PatchSchedule)
		}

		api.GET("/export/schedule", schedules.ExportSchedule)
		api.POST("/admin/clear-database", users.ClearDatabase)
	}
}
