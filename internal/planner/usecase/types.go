package usecase

// taskAttributes is the intermediate attribute set extracted from the model's
// JSON answer. Optional fields are pointers so absent and null both decode to
// nil; the literal string "null" is scrubbed downstream.
type taskAttributes struct {
	Category             string  `json:"category"`
	Priority             string  `json:"priority"`
	LocationType         string  `json:"location_type"`
	BuildingID           *string `json:"building_id"`
	RoomID               *string `json:"room_id"`
	GoogleMapsQuery      *string `json:"google_maps_query"`
	PlaceName            *string `json:"place_name"`
	PlaceDescription     *string `json:"place_description"`
	StartTime            *string `json:"start_time"`
	EndTime              *string `json:"end_time"`
	FixedTime            *string `json:"fixed_time"` // legacy single-time field
	EstimatedDuration    *int    `json:"estimated_duration"`
	EstimatedWalkingTime *int    `json:"estimated_walking_time"`
	WeatherSensitive     bool    `json:"weather_sensitive"`
}
