package planner

import "campus-smart-planner/internal/model"

// ParseInput is the input for batch task parsing.
type ParseInput struct {
	Descriptions []string // Natural language task descriptions, one per task
}

// ParseOutput is the result of batch task parsing. Tasks has exactly one
// record per input description, in input order, with ids task1..taskN.
type ParseOutput struct {
	Tasks []model.Task
}
