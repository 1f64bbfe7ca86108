package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"campus-smart-planner/internal/model"
)

var (
	// specificBusinessRe matches queries that open with a capitalized name
	// ("Starbucks on Mackay Street") rather than a lowercase category search.
	specificBusinessRe = regexp.MustCompile(`^[A-Z][a-z]+(\s[A-Z][a-z]+){0,3}(\s(Restaurant|Bar|Café|Hotel|Coffee Shop))?`)

	// brandPatterns remove business names that leaked into a category query.
	brandPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(starbucks|tim hortons|second cup|café depot|boustan|quesada|brasserie|hotel birks)`),
		regexp.MustCompile(`(?i)(restaurant|café|coffee shop|bar) called ([A-Z][a-z]+)`),
		regexp.MustCompile(`(?i)at ([A-Z][a-z]+('s)?( [A-Z][a-z]+){0,3})`),
	}

	multiSpaceRe  = regexp.MustCompile(`\s+`)
	doubleCommaRe = regexp.MustCompile(`,\s*,`)
	wordRe        = regexp.MustCompile(`\b\w+\b`)
)

// categoryKeywords mark a query as already being a broad category search.
var categoryKeywords = []string{"restaurant", "cafe", "bar", "hotel", "coffee shop", "study spot"}

// suggestionProfile pairs a category query template with the catalog key and
// the human-facing label used in the suggestion prompt. An empty catalogKey
// means the category has no catalog entry and takes the generic fallback.
type suggestionProfile struct {
	query      string
	kind       string
	catalogKey string
}

// ResolveOffCampus rewrites off-campus location data into a broad,
// map-search-friendly form. It never emits a single named business as the
// query and always marks the record for user confirmation.
func (r *Resolver) ResolveOffCampus(t *model.Task) {
	t.NeedsResolution = true
	t.NeedsReview = true

	placeName := scrubNull(t.PlaceName)
	placeDesc := ""
	if pd := scrubNull(t.PlaceDescription); pd != nil {
		placeDesc = *pd
	}
	query := strings.TrimSpace(t.GoogleMapsQuery)

	switch {
	case query != "" && !strings.EqualFold(query, "null"):
		query = r.broadenQuery(query, t)
	case placeName == nil:
		query, placeName, placeDesc = r.suggestPlace(t)
	default:
		// A concrete place name but no query: search for the place itself.
		query = *placeName
		if !containsFold(query, "montreal") {
			query += ", Montreal"
		}
	}

	if placeName != nil && !strings.Contains(*placeName, "Montreal") && !strings.Contains(*placeName, "Concordia") {
		placeName = strPtr(*placeName + ", Montreal")
	}

	t.PlaceName = placeName
	if placeDesc != "" {
		t.PlaceDescription = &placeDesc
	}
	t.GoogleMapsQuery = query
	t.LocationType = model.LocationOffCampus

	loc := &model.Location{
		Type:            model.LocationOffCampus,
		GoogleMapsQuery: query,
	}
	if placeName != nil {
		loc.Name = *placeName
	}
	if placeDesc != "" {
		loc.Description = &placeDesc
	}
	t.Location = loc
}

// broadenQuery checks a model-supplied query and rewrites it to a category
// search when it names a specific business. Already-broad queries pass
// through untouched, which keeps re-resolution idempotent.
func (r *Resolver) broadenQuery(query string, t *model.Task) string {
	if specificBusinessRe.MatchString(query) && !containsCategoryKeyword(query) {
		hint := campusHint(t.Description)
		lower := strings.ToLower(t.Description)

		switch {
		case t.Category == model.CategoryMeal || strings.Contains(lower, "coffee"):
			query = nearCampus("restaurants", hint)
		case strings.Contains(lower, "drink"):
			query = nearCampus("bars", hint)
		case strings.Contains(lower, "sleep") || strings.Contains(lower, "hotel"):
			query = nearCampus("hotels", hint)
		default:
			if !strings.Contains(query, "near Concordia University") {
				query += " near Concordia University, Montreal"
			}
		}
	}

	if !containsFold(query, "montreal") {
		query += ", Montreal"
	}
	return query
}

// suggestPlace derives a category query purely from the description and the
// task category, and consults the suggestion catalog for candidate places.
func (r *Resolver) suggestPlace(t *model.Task) (string, *string, string) {
	profile := r.suggestionProfile(t)
	query := profile.query

	var suggestions []string
	if profile.catalogKey != "" {
		suggestions = r.cfg.Suggestions[profile.catalogKey]
	}
	if len(suggestions) == 0 {
		return query,
			strPtr(t.Description + " in Montreal"),
			"Please specify a more detailed location for this task."
	}

	hintToken := ""
	switch campusHint(t.Description) {
	case "SGW Campus":
		hintToken = "sgw"
		query = strings.Replace(query, "Concordia University", "Concordia University SGW Campus", 1)
	case "Loyola Campus":
		hintToken = "loyola"
		query = strings.Replace(query, "Concordia University", "Concordia University Loyola Campus", 1)
	}

	query = stripBusinessNames(query)

	filtered := suggestions
	if hintToken != "" {
		var matched []string
		for _, s := range suggestions {
			ls := strings.ToLower(s)
			if strings.Contains(ls, hintToken) || (!strings.Contains(ls, "sgw") && !strings.Contains(ls, "loyola")) {
				matched = append(matched, s)
			}
		}
		if len(matched) > 0 {
			filtered = matched
		}
	}

	top := filtered
	if len(top) > 3 {
		top = top[:3]
	}
	desc := fmt.Sprintf("Suggested locations: %s. Select or specify a different %s.",
		strings.Join(top, ", "), profile.kind)

	return query, strPtr(filtered[0]), desc
}

// suggestionProfile picks the category query, laying keyword checks out in
// the same precedence the rest of the resolution uses.
func (r *Resolver) suggestionProfile(t *model.Task) suggestionProfile {
	lower := strings.ToLower(t.Description)

	switch {
	case strings.Contains(lower, "coffee"):
		return suggestionProfile{nearCampus("coffee shops", ""), "coffee shop", "coffee"}
	case strings.Contains(lower, "drink") || strings.Contains(lower, "bar"):
		return suggestionProfile{nearCampus("bars", ""), "bar", ""}
	case strings.Contains(lower, "sleep") || strings.Contains(lower, "hotel") || strings.Contains(lower, "rest"):
		return suggestionProfile{nearCampus("hotels", ""), "accommodation", ""}
	case t.Category == model.CategoryMeal || strings.Contains(lower, "food") ||
		strings.Contains(lower, "eat") || strings.Contains(lower, "lunch") || strings.Contains(lower, "dinner"):
		return suggestionProfile{nearCampus("restaurants", ""), "restaurant", "food"}
	case t.Category == model.CategoryStudy:
		return suggestionProfile{nearCampus("study spots", ""), "study place", "study"}
	case t.Category == model.CategorySocial:
		return suggestionProfile{nearCampus("social venues", ""), "social venue", ""}
	default:
		if word := r.activityWord(t.Description); word != "" {
			return suggestionProfile{nearCampus(word, ""), "location", ""}
		}
		return suggestionProfile{nearCampus("places", ""), "location", ""}
	}
}

// activityWord extracts the first content word from a description, skipping
// short words and the fixed stop-word list.
func (r *Resolver) activityWord(description string) string {
	for _, word := range wordRe.FindAllString(strings.ToLower(description), -1) {
		if len(word) > 3 && !r.isStopWord(word) {
			return word
		}
	}
	return ""
}

// stripBusinessNames removes brand names that leaked into a category query
// and cleans up the substitution artifacts.
func stripBusinessNames(query string) string {
	for _, p := range brandPatterns {
		query = p.ReplaceAllString(query, "")
	}
	query = strings.TrimSpace(multiSpaceRe.ReplaceAllString(query, " "))
	query = doubleCommaRe.ReplaceAllString(query, ",")
	if !strings.HasSuffix(query, "Montreal") {
		query += ", Montreal"
	}
	return query
}

func containsCategoryKeyword(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
