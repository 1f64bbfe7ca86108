package http

import (
	"github.com/gin-gonic/gin"

	"campus-smart-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Parsing is rate-limited per client; health is not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sp := rg.Group("/smart-planner")
	{
		sp.POST("/parse-tasks", mw.RateLimit(), h.ParseTasks)
		sp.GET("/health", h.Health)
	}
}
