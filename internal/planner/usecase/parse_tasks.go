package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"campus-smart-planner/internal/model"
	"campus-smart-planner/internal/planner"
	"campus-smart-planner/pkg/gemini"
)

// Generation settings for task analysis. Low temperature keeps the JSON
// output deterministic.
const (
	analysisTemperature = 0.2
	analysisMaxTokens   = 1024
)

// ParseTasks converts each description into a structured task record.
// Items are processed one at a time in input order; a failed item becomes a
// fallback record and never aborts the batch.
func (uc *implUseCase) ParseTasks(ctx context.Context, input planner.ParseInput) (planner.ParseOutput, error) {
	tasks := make([]model.Task, 0, len(input.Descriptions))

	for i, description := range input.Descriptions {
		if err := ctx.Err(); err != nil {
			return planner.ParseOutput{}, err
		}

		task, err := uc.parseOne(ctx, description)
		if err != nil {
			uc.l.Warnf(ctx, "parse task %d failed, using fallback: %v", i+1, err)
			task = fallbackTask(description, err)
		}

		task.ID = fmt.Sprintf("task%d", i+1)
		tasks = append(tasks, task)
	}

	return planner.ParseOutput{Tasks: tasks}, nil
}

// parseOne runs the full per-item pipeline: generation, JSON extraction,
// validation, time normalization and location resolution. The returned task
// has no ID; the orchestrator stamps position-based ids so cached records
// stay position-independent.
func (uc *implUseCase) parseOne(ctx context.Context, description string) (model.Task, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(description); ok {
			uc.l.Debugf(ctx, "parse cache hit for %q", description)
			return cached, nil
		}
	}

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: gemini.BuildTaskAnalysisPrompt(description)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     analysisTemperature,
			MaxOutputTokens: analysisMaxTokens,
		},
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("%w: %v", planner.ErrGeneration, err)
	}

	text := resp.Text()
	if text == "" {
		return model.Task{}, planner.ErrEmptyResponse
	}

	var attrs taskAttributes
	if err := json.Unmarshal([]byte(extractJSON(text)), &attrs); err != nil {
		uc.l.Errorf(ctx, "unparseable model response: %q", text)
		return model.Task{}, fmt.Errorf("%w: %v", planner.ErrResponseParse, err)
	}

	task := buildTask(description, attrs)

	if task.LocationType == model.LocationOffCampus {
		uc.resolver.ResolveOffCampus(&task)
	} else {
		uc.resolver.ResolveCampus(&task)
	}

	if uc.cache != nil {
		uc.cache.Add(description, task)
	}
	return task, nil
}
