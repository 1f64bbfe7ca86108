package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrGeneration    = errors.New("text generation failed")
	ErrEmptyResponse = errors.New("empty response from model")
	ErrResponseParse = errors.New("model response is not valid JSON")
)
