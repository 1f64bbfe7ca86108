package http

import (
	"campus-smart-planner/internal/model"
	"campus-smart-planner/internal/planner"
)

type parseReq struct {
	Tasks []string `json:"tasks" binding:"required"`
}

func (r parseReq) toInput() planner.ParseInput {
	return planner.ParseInput{Descriptions: r.Tasks}
}

// parseResp is the wire shape consumed by the navigation frontend.
type parseResp struct {
	ParsedTasks []model.Task `json:"parsed_tasks"`
}

func (h *handler) newParseResp(output planner.ParseOutput) parseResp {
	return parseResp{ParsedTasks: output.Tasks}
}
