package usecase

import "campus-smart-planner/internal/model"

const (
	fallbackTitleLimit = 30
	fallbackDuration   = 15
	fallbackMapsQuery  = "Concordia University, Montreal"
)

// fallbackTask produces a degraded but schema-valid record for a description
// whose pipeline failed. Downstream consumers never special-case failures.
func fallbackTask(description string, cause error) model.Task {
	title := description
	if runes := []rune(description); len(runes) > fallbackTitleLimit {
		title = string(runes[:fallbackTitleLimit]) + "..."
	}

	parseErr := cause.Error()

	return model.Task{
		Title:             title,
		Description:       description,
		Category:          model.CategoryOther,
		Priority:          model.PriorityMedium,
		LocationType:      model.LocationUnknown,
		EstimatedDuration: fallbackDuration,
		NeedsReview:       true,
		ParseError:        &parseErr,
		GoogleMapsQuery:   fallbackMapsQuery,
		Location: &model.Location{
			Type:            model.LocationUnknown,
			Name:            "Unknown location",
			GoogleMapsQuery: fallbackMapsQuery,
		},
	}
}
