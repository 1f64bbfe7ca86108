package usecase

import (
	"strings"

	"campus-smart-planner/internal/model"
)

// extractTitle derives a short title from the task description.
func extractTitle(description string) string {
	words := strings.Fields(description)
	if len(words) <= 5 {
		return description
	}
	return strings.Join(words[:5], " ") + "..."
}

// buildTask validates the extracted attributes into a typed task record.
// Enum-ish fields fall back to safe defaults instead of failing the record.
func buildTask(description string, attrs taskAttributes) model.Task {
	t := model.Task{
		Title:                extractTitle(description),
		Description:          description,
		Category:             parseCategory(attrs.Category),
		Priority:             parsePriority(attrs.Priority),
		LocationType:         parseLocationType(attrs.LocationType),
		BuildingID:           attrs.BuildingID,
		RoomID:               attrs.RoomID,
		PlaceName:            attrs.PlaceName,
		PlaceDescription:     attrs.PlaceDescription,
		StartTime:            scrubNull(attrs.StartTime),
		EndTime:              scrubNull(attrs.EndTime),
		EstimatedDuration:    60,
		EstimatedWalkingTime: attrs.EstimatedWalkingTime,
		WeatherSensitive:     attrs.WeatherSensitive,
	}

	if attrs.EstimatedDuration != nil && *attrs.EstimatedDuration > 0 {
		t.EstimatedDuration = *attrs.EstimatedDuration
	}
	if attrs.GoogleMapsQuery != nil {
		t.GoogleMapsQuery = *attrs.GoogleMapsQuery
	}

	normalizeTimes(&t, scrubNull(attrs.FixedTime))
	return t
}

func parseCategory(v string) model.TaskCategory {
	switch c := model.TaskCategory(strings.ToLower(v)); c {
	case model.CategoryClass, model.CategoryMeeting, model.CategoryStudy,
		model.CategoryMeal, model.CategoryAdmin, model.CategorySocial:
		return c
	default:
		return model.CategoryOther
	}
}

func parsePriority(v string) model.TaskPriority {
	switch p := model.TaskPriority(strings.ToLower(v)); p {
	case model.PriorityHigh, model.PriorityLow:
		return p
	default:
		return model.PriorityMedium
	}
}

func parseLocationType(v string) model.LocationType {
	switch lt := model.LocationType(strings.ToLower(v)); lt {
	case model.LocationCampusIndoor, model.LocationCampusOutdoor, model.LocationOffCampus:
		return lt
	default:
		return model.LocationUnknown
	}
}

// scrubNull treats empty strings and the literal "null" as absent.
func scrubNull(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return nil
	}
	return &trimmed
}
