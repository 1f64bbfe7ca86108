package usecase

import (
	"testing"

	"campus-smart-planner/internal/model"
)

func strp(s string) *string { return &s }

func TestNormalizeTimes(t *testing.T) {
	t.Run("derives end from start and duration", func(t *testing.T) {
		task := model.Task{StartTime: strp("2026-01-15T10:15:00"), EstimatedDuration: 30}
		normalizeTimes(&task, nil)

		if task.EndTime == nil || *task.EndTime != "2026-01-15T10:45:00" {
			t.Errorf("expected end 10:45:00, got %v", task.EndTime)
		}
	})

	t.Run("keeps RFC 3339 shape when start carries a zone", func(t *testing.T) {
		task := model.Task{StartTime: strp("2026-01-15T10:15:00Z"), EstimatedDuration: 45}
		normalizeTimes(&task, nil)

		if task.EndTime == nil || *task.EndTime != "2026-01-15T11:00:00Z" {
			t.Errorf("expected zoned end 11:00:00Z, got %v", task.EndTime)
		}
	})

	t.Run("defaults duration to an hour", func(t *testing.T) {
		task := model.Task{StartTime: strp("2026-01-15T10:00:00")}
		normalizeTimes(&task, nil)

		if task.EndTime == nil || *task.EndTime != "2026-01-15T11:00:00" {
			t.Errorf("expected end an hour later, got %v", task.EndTime)
		}
	})

	t.Run("legacy fixed_time becomes start", func(t *testing.T) {
		task := model.Task{EstimatedDuration: 30}
		normalizeTimes(&task, strp("2026-01-15T14:00:00"))

		if task.StartTime == nil || *task.StartTime != "2026-01-15T14:00:00" {
			t.Errorf("expected start from fixed time, got %v", task.StartTime)
		}
		if task.EndTime == nil || *task.EndTime != "2026-01-15T14:30:00" {
			t.Errorf("expected derived end, got %v", task.EndTime)
		}
	})

	t.Run("explicit start wins over fixed_time", func(t *testing.T) {
		task := model.Task{StartTime: strp("2026-01-15T09:00:00"), EstimatedDuration: 60}
		normalizeTimes(&task, strp("2026-01-15T14:00:00"))

		if *task.StartTime != "2026-01-15T09:00:00" {
			t.Errorf("start must not be overwritten, got %q", *task.StartTime)
		}
	})

	t.Run("existing end is never recomputed", func(t *testing.T) {
		task := model.Task{
			StartTime:         strp("2026-01-15T10:00:00"),
			EndTime:           strp("2026-01-15T12:00:00"),
			EstimatedDuration: 30,
		}
		normalizeTimes(&task, nil)

		if *task.EndTime != "2026-01-15T12:00:00" {
			t.Errorf("end must be preserved, got %q", *task.EndTime)
		}
	})

	t.Run("unparseable start nulls the end", func(t *testing.T) {
		task := model.Task{StartTime: strp("tomorrow at noon"), EstimatedDuration: 30}
		normalizeTimes(&task, nil)

		if task.EndTime != nil {
			t.Errorf("expected nil end for bad start, got %q", *task.EndTime)
		}
	})

	t.Run("no times at all is a no-op", func(t *testing.T) {
		task := model.Task{EstimatedDuration: 30}
		normalizeTimes(&task, nil)

		if task.StartTime != nil || task.EndTime != nil {
			t.Error("expected both times to stay nil")
		}
	})
}

func TestBuildTask(t *testing.T) {
	t.Run("invalid enums fall back to defaults", func(t *testing.T) {
		task := buildTask("Do something", taskAttributes{
			Category:     "galactic",
			Priority:     "extreme",
			LocationType: "orbit",
		})

		if task.Category != model.CategoryOther {
			t.Errorf("expected category other, got %q", task.Category)
		}
		if task.Priority != model.PriorityMedium {
			t.Errorf("expected priority medium, got %q", task.Priority)
		}
		if task.LocationType != model.LocationUnknown {
			t.Errorf("expected location unknown, got %q", task.LocationType)
		}
		if task.EstimatedDuration != 60 {
			t.Errorf("expected default duration 60, got %d", task.EstimatedDuration)
		}
	})

	t.Run("literal null strings are scrubbed", func(t *testing.T) {
		task := buildTask("Meet the advisor", taskAttributes{
			Category:  "meeting",
			StartTime: strp("null"),
			EndTime:   strp(""),
		})

		if task.StartTime != nil || task.EndTime != nil {
			t.Error("expected null-ish times to be dropped")
		}
	})

	t.Run("long description gets a shortened title", func(t *testing.T) {
		task := buildTask("Pick up the transcript from the registrar office downtown", taskAttributes{})

		if task.Title != "Pick up the transcript from..." {
			t.Errorf("unexpected title %q", task.Title)
		}
	})

	t.Run("short description is its own title", func(t *testing.T) {
		task := buildTask("Buy groceries", taskAttributes{})

		if task.Title != "Buy groceries" {
			t.Errorf("unexpected title %q", task.Title)
		}
	})
}
