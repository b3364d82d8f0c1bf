package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrireco/go-reco-engine/services"
)

// maxRequestBodySize bounds request bodies (1 MB); build and recommend
// requests are tiny JSON documents.
const maxRequestBodySize = 1 << 20

// RequestSizeLimitMiddleware limits the size of request bodies to prevent memory exhaustion
func RequestSizeLimitMiddleware(maxSize int64) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	})
}

// CORSMiddleware adds CORS headers for cross-origin requests. Datasets are
// immutable once built, so the surface has no PUT or PATCH to allow.
func CORSMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

// API holds dependencies for API handlers, primarily the pipeline engine.
type API struct {
	engine services.EngineAccessor
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.EngineAccessor) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all the API routes for the recommendation engine.
func SetupRoutes(router *gin.Engine, engine services.EngineAccessor) {
	apiHandler := NewAPI(engine)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Profile routes (read-only configuration surface)
	profileRoutes := router.Group("/profiles")
	{
		profileRoutes.GET("", apiHandler.ListProfilesHandler)         // List profile tags
		profileRoutes.GET("/:tag", apiHandler.GetProfileHandler)      // Get profile tables
		profileRoutes.GET("/:tag/needs", apiHandler.ListNeedsHandler) // List needs with weights
	}

	// Dataset lifecycle routes
	datasetRoutes := router.Group("/datasets")
	{
		datasetRoutes.POST("", apiHandler.BuildDatasetHandler)                 // Fetch + preprocess into a named dataset
		datasetRoutes.GET("", apiHandler.ListDatasetsHandler)                  // List datasets
		datasetRoutes.GET("/:name", apiHandler.GetDatasetHandler)              // Get dataset summary
		datasetRoutes.DELETE("/:name", apiHandler.DeleteDatasetHandler)        // Delete a dataset
		datasetRoutes.GET("/:name/report", apiHandler.GetDatasetReportHandler) // Diagnostic validation report
		datasetRoutes.POST("/:name/export", apiHandler.ExportDatasetHandler)   // Write CSV files
		datasetRoutes.POST("/:name/_recommend", apiHandler.RecommendHandler)   // Rank against a need
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"profiles": api.engine.ProfileTags(),
	})
}

// ListProfilesHandler lists the configured profile tags.
func (api *API) ListProfilesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": api.engine.ProfileTags()})
}

// GetProfileHandler returns the full configuration tables of one profile.
func (api *API) GetProfileHandler(c *gin.Context) {
	tag := c.Param("tag")
	profile, err := api.engine.Profile(tag)
	if err != nil {
		SendProfileNotFoundError(c, tag)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListNeedsHandler returns the need keys and weight tables of one profile.
func (api *API) ListNeedsHandler(c *gin.Context) {
	tag := c.Param("tag")
	profile, err := api.engine.Profile(tag)
	if err != nil {
		SendProfileNotFoundError(c, tag)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile": tag,
		"needs":   profile.Needs,
	})
}
