package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-smart-planner/pkg/response"
)

// ParseTasks godoc
// @Summary     Parse natural-language tasks
// @Description Converts free-form task descriptions into structured, geocodable task records.
// @Tags        SmartPlanner
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Task descriptions"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/smart-planner/parse-tasks [POST]
func (h *handler) ParseTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseTasks: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newParseResp(output))
}

// Health godoc
// @Summary     Smart planner health check
// @Tags        SmartPlanner
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /api/smart-planner/health [get]
func (h *handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
