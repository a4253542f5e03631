package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route under /api/v1.
func NewRouter(wizards *WizardHandler, jobs *JobHandler, origins []string) *gin.Engine {
	r := gin.Default()
	// List items travel as path segments; route on the escaped path so
	// "CI%2FCD" stays one segment.
	r.UseRawPath = true
	r.UnescapePathValues = true

	config := cors.DefaultConfig()
	if len(origins) == 0 {
		config.AllowAllOrigins = true // For development only
	} else {
		config.AllowOrigins = origins
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-User-ID"}
	r.Use(cors.New(config))
	r.Use(ExtractSession())

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		wizards.Register(api)

		api.GET("/jobs", jobs.ListJobs)
		api.POST("/jobs", jobs.CreateJob)
		api.POST("/jobs/extract", jobs.ParseJob)
		api.PATCH("/jobs/:id", jobs.UpdateStatus)
	}
	return r
}
