package resolver

import (
	"fmt"
	"strings"

	"campus-smart-planner/internal/model"
)

// ResolveCampus canonicalizes building data for on-campus tasks, synthesizes
// a map query when the model did not supply one, and computes review flags.
func (r *Resolver) ResolveCampus(t *model.Task) {
	buildingID := scrubNull(t.BuildingID)
	if buildingID != nil {
		canonical := strings.ToLower(*buildingID)
		if mapped, ok := r.cfg.BuildingAliases[canonical]; ok {
			canonical = mapped
		}
		buildingID = &canonical
	}
	roomID := scrubNull(t.RoomID)

	hasIndoorNav := buildingID != nil && r.hasIndoorNavigation(*buildingID)
	name := r.locationName(buildingID, roomID)

	query := t.GoogleMapsQuery
	if query == "" || strings.EqualFold(query, "null") {
		query = r.campusQuery(t, buildingID, name)
	}

	locType := t.LocationType
	if locType == "" || locType == model.LocationUnknown {
		locType = model.LocationCampusIndoor
	}

	t.BuildingID = buildingID
	t.RoomID = roomID
	t.LocationType = locType
	t.GoogleMapsQuery = query
	t.Location = &model.Location{
		Type:                locType,
		Name:                name,
		BuildingID:          buildingID,
		RoomID:              roomID,
		HasIndoorNavigation: hasIndoorNav,
		GoogleMapsQuery:     query,
	}

	var reasons []string
	if buildingID == nil || !r.isSupportedBuilding(*buildingID) {
		reasons = append(reasons, "Unknown or unsupported building")
	}
	if hasIndoorNav && roomID == nil {
		reasons = append(reasons, fmt.Sprintf("Missing room number for %s (has indoor navigation)", name))
	}

	// A known building without a room is not itself review-worthy, but the
	// user should still be prompted to narrow it down.
	if buildingID != nil && roomID == nil && scrubNull(t.PlaceDescription) == nil {
		t.PlaceDescription = strPtr(fmt.Sprintf("Please specify a room or area within %s", name))
	}

	t.NeedsReview = len(reasons) > 0
	if len(reasons) > 0 {
		t.ReviewReason = strPtr(strings.Join(reasons, "; "))
	}

	if t.EstimatedWalkingTime == nil && buildingID != nil {
		minutes, ok := r.cfg.WalkingTimes[*buildingID]
		if !ok {
			minutes = r.cfg.DefaultWalkingTime
		}
		t.EstimatedWalkingTime = &minutes
	}
}

// locationName renders a human-readable name for a campus location.
func (r *Resolver) locationName(buildingID, roomID *string) string {
	if buildingID == nil {
		return "Unknown location"
	}

	buildingName, ok := r.cfg.BuildingNames[*buildingID]
	if !ok {
		buildingName = strings.ToUpper(*buildingID) + " Building"
	}

	if roomID != nil {
		return fmt.Sprintf("%s in %s", *roomID, buildingName)
	}
	return buildingName
}

// campusQuery synthesizes a Google Maps query for a campus task that came
// back without one. Known buildings get an exact query; vague campus tasks
// get a category search anchored near the university.
func (r *Resolver) campusQuery(t *model.Task, buildingID *string, name string) string {
	if buildingID != nil {
		return fmt.Sprintf("%s, Concordia University, Montreal", name)
	}

	hint := campusHint(t.Description)
	lower := strings.ToLower(t.Description)

	var query string
	switch {
	case strings.Contains(lower, "coffee"):
		query = nearCampus("coffee shops", hint)
	case strings.Contains(lower, "drink") || strings.Contains(lower, "bar"):
		query = nearCampus("bars", hint)
	case t.Category == model.CategoryStudy:
		query = nearCampus("study spaces", hint)
	case t.Category == model.CategoryMeal || strings.Contains(lower, "food") || strings.Contains(lower, "eat"):
		query = nearCampus("restaurants", hint)
	case t.Category == model.CategorySocial:
		query = nearCampus("student spaces", hint)
	default:
		if hint != "" {
			query = fmt.Sprintf("Concordia University %s, Montreal", hint)
		} else {
			query = "Concordia University, Montreal"
		}
	}

	// Vicinity searches need the "near" token so the map app suggests
	// multiple options instead of pinning the campus itself.
	if !strings.Contains(query, "near") {
		query = strings.Replace(query, "Concordia University", "near Concordia University", 1)
	}
	return query
}

// nearCampus builds "{category} near Concordia University [hint], Montreal".
func nearCampus(category, hint string) string {
	if hint != "" {
		return fmt.Sprintf("%s near Concordia University %s, Montreal", category, hint)
	}
	return fmt.Sprintf("%s near Concordia University, Montreal", category)
}
