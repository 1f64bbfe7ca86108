package usecase

import (
	"time"

	"campus-smart-planner/internal/model"
)

// localTimeLayout is the zone-less timestamp shape the prompt asks for.
const localTimeLayout = "2006-01-02T15:04:05"

// normalizeTimes reconciles the legacy single-time field into the start/end
// pair and derives a missing end time from the task duration. An unparseable
// start time nulls the derived end rather than failing the record.
func normalizeTimes(t *model.Task, fixedTime *string) {
	if fixedTime != nil && t.StartTime == nil {
		t.StartTime = fixedTime
	}

	if t.StartTime == nil || t.EndTime != nil {
		return
	}

	start, layout, err := parseTimestamp(*t.StartTime)
	if err != nil {
		t.EndTime = nil
		return
	}

	duration := t.EstimatedDuration
	if duration <= 0 {
		duration = 60
	}

	end := start.Add(time.Duration(duration) * time.Minute).Format(layout)
	t.EndTime = &end
}

// parseTimestamp accepts RFC 3339 timestamps (including a trailing Z) and the
// zone-less local form, and reports which layout matched so derived values
// keep the same shape.
func parseTimestamp(value string) (time.Time, string, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, time.RFC3339, nil
	}
	ts, err := time.Parse(localTimeLayout, value)
	if err != nil {
		return time.Time{}, "", err
	}
	return ts, localTimeLayout, nil
}
