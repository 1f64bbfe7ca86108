package resolver_test

import (
	"strings"
	"testing"

	"campus-smart-planner/internal/model"
	"campus-smart-planner/internal/planner/resolver"
)

func TestResolveOffCampus(t *testing.T) {
	r := resolver.New(resolver.DefaultConfig())

	t.Run("always flags for resolution and review", func(t *testing.T) {
		task := model.Task{
			Description:  "Dinner somewhere nice",
			Category:     model.CategoryMeal,
			LocationType: model.LocationOffCampus,
		}
		r.ResolveOffCampus(&task)

		if !task.NeedsResolution || !task.NeedsReview {
			t.Error("off-campus tasks must always be flagged")
		}
		if task.Location == nil || task.Location.Type != model.LocationOffCampus {
			t.Error("expected off_campus location sub-record")
		}
	})

	t.Run("specific business query is broadened", func(t *testing.T) {
		task := model.Task{
			Description:     "Coffee with Alex",
			Category:        model.CategorySocial,
			LocationType:    model.LocationOffCampus,
			GoogleMapsQuery: "Starbucks on Mackay Street",
		}
		r.ResolveOffCampus(&task)

		if strings.Contains(task.GoogleMapsQuery, "Starbucks") {
			t.Errorf("query must not name a single business, got %q", task.GoogleMapsQuery)
		}
		if task.GoogleMapsQuery != "restaurants near Concordia University, Montreal" {
			t.Errorf("unexpected broadened query %q", task.GoogleMapsQuery)
		}
	})

	t.Run("drink query broadens to bars", func(t *testing.T) {
		task := model.Task{
			Description:     "Grab a drink after work",
			LocationType:    model.LocationOffCampus,
			GoogleMapsQuery: "Brutopia Crescent",
		}
		r.ResolveOffCampus(&task)

		if task.GoogleMapsQuery != "bars near Concordia University, Montreal" {
			t.Errorf("unexpected query %q", task.GoogleMapsQuery)
		}
	})

	t.Run("sleep query broadens to hotels", func(t *testing.T) {
		task := model.Task{
			Description:     "Find a place for my parents to sleep",
			LocationType:    model.LocationOffCampus,
			GoogleMapsQuery: "Ritz Carlton",
		}
		r.ResolveOffCampus(&task)

		if task.GoogleMapsQuery != "hotels near Concordia University, Montreal" {
			t.Errorf("unexpected query %q", task.GoogleMapsQuery)
		}
	})

	t.Run("unrecognized specific place is anchored near campus", func(t *testing.T) {
		task := model.Task{
			Description:     "Watch the game",
			LocationType:    model.LocationOffCampus,
			GoogleMapsQuery: "Bell Centre",
		}
		r.ResolveOffCampus(&task)

		if task.GoogleMapsQuery != "Bell Centre near Concordia University, Montreal" {
			t.Errorf("unexpected query %q", task.GoogleMapsQuery)
		}
	})

	t.Run("broad category query passes through", func(t *testing.T) {
		task := model.Task{
			Description:     "Lunch out",
			LocationType:    model.LocationOffCampus,
			GoogleMapsQuery: "Thai restaurant downtown Montreal",
		}
		r.ResolveOffCampus(&task)

		if task.GoogleMapsQuery != "Thai restaurant downtown Montreal" {
			t.Errorf("broad query must be preserved, got %q", task.GoogleMapsQuery)
		}
	})

	t.Run("place name without a query becomes the query", func(t *testing.T) {
		task := model.Task{
			Description:  "Grocery run",
			LocationType: model.LocationOffCampus,
			PlaceName:    strp("Atwater Market"),
		}
		r.ResolveOffCampus(&task)

		if task.GoogleMapsQuery != "Atwater Market, Montreal" {
			t.Errorf("unexpected query %q", task.GoogleMapsQuery)
		}
		if task.PlaceName == nil || *task.PlaceName != "Atwater Market, Montreal" {
			t.Errorf("place name should be anchored to the city, got %v", task.PlaceName)
		}
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		task := model.Task{
			Description:     "Watch the game",
			LocationType:    model.LocationOffCampus,
			GoogleMapsQuery: "Bell Centre",
		}
		r.ResolveOffCampus(&task)
		first := task.GoogleMapsQuery

		r.ResolveOffCampus(&task)
		if task.GoogleMapsQuery != first {
			t.Errorf("second resolution changed the query: %q -> %q", first, task.GoogleMapsQuery)
		}
	})

	t.Run("repeated suggestion resolution is stable", func(t *testing.T) {
		task := model.Task{
			Description:  "Get coffee with friends",
			LocationType: model.LocationOffCampus,
		}
		r.ResolveOffCampus(&task)
		firstQuery, firstName := task.GoogleMapsQuery, *task.PlaceName

		r.ResolveOffCampus(&task)
		if task.GoogleMapsQuery != firstQuery || *task.PlaceName != firstName {
			t.Errorf("second resolution drifted: %q/%q -> %q/%q",
				firstQuery, firstName, task.GoogleMapsQuery, *task.PlaceName)
		}
	})
}

func TestSuggestPlace(t *testing.T) {
	r := resolver.New(resolver.DefaultConfig())

	t.Run("coffee suggestions from the catalog", func(t *testing.T) {
		task := model.Task{
			Description:  "Get coffee with friends",
			Category:     model.CategorySocial,
			LocationType: model.LocationOffCampus,
		}
		r.ResolveOffCampus(&task)

		if task.GoogleMapsQuery != "coffee shops near Concordia University, Montreal" {
			t.Errorf("unexpected query %q", task.GoogleMapsQuery)
		}
		if task.PlaceName == nil || *task.PlaceName != "Starbucks on Mackay Street, Montreal" {
			t.Errorf("expected first catalog entry, got %v", task.PlaceName)
		}
		if task.PlaceDescription == nil {
			t.Fatal("expected a suggestion prompt")
		}
		desc := *task.PlaceDescription
		if !strings.HasPrefix(desc, "Suggested locations: Starbucks on Mackay Street, ") {
			t.Errorf("unexpected prompt %q", desc)
		}
		if !strings.HasSuffix(desc, "Select or specify a different coffee shop.") {
			t.Errorf("unexpected prompt suffix %q", desc)
		}
	})

	t.Run("meal suggestions respect a campus hint", func(t *testing.T) {
		task := model.Task{
			Description:  "Lunch near Loyola",
			Category:     model.CategoryMeal,
			LocationType: model.LocationOffCampus,
		}
		r.ResolveOffCampus(&task)

		if task.GoogleMapsQuery != "restaurants near Concordia University Loyola Campus, Montreal" {
			t.Errorf("unexpected query %q", task.GoogleMapsQuery)
		}
		if task.PlaceName == nil {
			t.Fatal("expected a suggested place")
		}
	})

	t.Run("study suggestions", func(t *testing.T) {
		task := model.Task{
			Description:  "Cram session somewhere quiet",
			Category:     model.CategoryStudy,
			LocationType: model.LocationOffCampus,
		}
		r.ResolveOffCampus(&task)

		if task.GoogleMapsQuery != "study spots near Concordia University, Montreal" {
			t.Errorf("unexpected query %q", task.GoogleMapsQuery)
		}
		if task.PlaceName == nil || !strings.HasPrefix(*task.PlaceName, "Webster Library") {
			t.Errorf("expected first study catalog entry, got %v", task.PlaceName)
		}
	})

	t.Run("category without a catalog gets the generic fallback", func(t *testing.T) {
		task := model.Task{
			Description:  "Buy a birthday gift",
			LocationType: model.LocationOffCampus,
		}
		r.ResolveOffCampus(&task)

		if task.GoogleMapsQuery != "birthday near Concordia University, Montreal" {
			t.Errorf("unexpected query %q", task.GoogleMapsQuery)
		}
		if task.PlaceName == nil || *task.PlaceName != "Buy a birthday gift in Montreal" {
			t.Errorf("unexpected place name %v", task.PlaceName)
		}
		if task.PlaceDescription == nil ||
			*task.PlaceDescription != "Please specify a more detailed location for this task." {
			t.Errorf("unexpected prompt %v", task.PlaceDescription)
		}
	})

	t.Run("stop words never become the activity", func(t *testing.T) {
		task := model.Task{
			Description:  "with around campus concordia errands",
			LocationType: model.LocationOffCampus,
		}
		r.ResolveOffCampus(&task)

		if task.GoogleMapsQuery != "errands near Concordia University, Montreal" {
			t.Errorf("unexpected query %q", task.GoogleMapsQuery)
		}
	})
}
