package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the parse-tasks request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
