package model

// LocationType classifies where a task happens relative to campus.
type LocationType string

const (
	LocationCampusIndoor  LocationType = "campus_indoor"
	LocationCampusOutdoor LocationType = "campus_outdoor"
	LocationOffCampus     LocationType = "off_campus"
	LocationUnknown       LocationType = "unknown"
)

// TaskCategory is the high-level activity class of a task.
type TaskCategory string

const (
	CategoryClass   TaskCategory = "class"
	CategoryMeeting TaskCategory = "meeting"
	CategoryStudy   TaskCategory = "study"
	CategoryMeal    TaskCategory = "meal"
	CategoryAdmin   TaskCategory = "admin"
	CategorySocial  TaskCategory = "social"
	CategoryOther   TaskCategory = "other"
)

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Location is the resolved location sub-record attached to a parsed task.
type Location struct {
	Type                LocationType `json:"type"`
	Name                string       `json:"name"`
	BuildingID          *string      `json:"building_id,omitempty"`
	RoomID              *string      `json:"room_id,omitempty"`
	Description         *string      `json:"description,omitempty"`
	HasIndoorNavigation bool         `json:"has_indoor_navigation"`
	GoogleMapsQuery     string       `json:"google_maps_query"`
}

// Task is the structured record produced for one task description.
// Timestamps stay in their wire form (ISO 8601 strings) since the planner
// never does calendar math beyond deriving an end time.
type Task struct {
	ID                   string       `json:"id"`
	Title                string       `json:"title"`
	Description          string       `json:"description"`
	Category             TaskCategory `json:"category"`
	Priority             TaskPriority `json:"priority"`
	LocationType         LocationType `json:"location_type"`
	BuildingID           *string      `json:"building_id,omitempty"`
	RoomID               *string      `json:"room_id,omitempty"`
	StartTime            *string      `json:"start_time,omitempty"`
	EndTime              *string      `json:"end_time,omitempty"`
	EstimatedDuration    int          `json:"estimated_duration"`
	EstimatedWalkingTime *int         `json:"estimated_walking_time,omitempty"`
	WeatherSensitive     bool         `json:"weather_sensitive"`
	NeedsResolution      bool         `json:"needs_resolution"`
	NeedsReview          bool         `json:"needs_review"`
	ReviewReason         *string      `json:"review_reason,omitempty"`
	GoogleMapsQuery      string       `json:"google_maps_query"`
	PlaceName            *string      `json:"place_name,omitempty"`
	PlaceDescription     *string      `json:"place_description,omitempty"`
	Location             *Location    `json:"location,omitempty"`
	ParseError           *string      `json:"parse_error,omitempty"`
}
