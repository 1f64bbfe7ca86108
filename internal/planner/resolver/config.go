package resolver

// Config holds the fixed campus knowledge the resolvers consult. It is built
// once and treated as read-only for the lifetime of the process.
type Config struct {
	// BuildingAliases maps common short codes to canonical building ids.
	BuildingAliases map[string]string

	// BuildingNames maps canonical building ids to display names.
	BuildingNames map[string]string

	// SupportedBuildings are the buildings the navigation layer knows about;
	// anything else flags the record for review.
	SupportedBuildings []string

	// IndoorNavBuildings support room-level indoor wayfinding and therefore
	// need a room number for full resolution.
	IndoorNavBuildings []string

	// WalkingTimes are default in-building walking estimates in minutes.
	WalkingTimes map[string]int

	// DefaultWalkingTime applies to known buildings missing a table entry.
	DefaultWalkingTime int

	// StopWords are excluded when picking an activity word from a description.
	StopWords []string

	// Suggestions is the off-campus suggestion catalog, keyed by category.
	Suggestions map[string][]string
}

// DefaultConfig returns the campus configuration for Concordia University.
func DefaultConfig() Config {
	return Config{
		BuildingAliases: map[string]string{
			"h":  "hall",
			"lb": "library",
			"mb": "jmsb",
			"cc": "cc",
		},
		BuildingNames: map[string]string{
			"hall":    "Hall Building",
			"library": "Webster Library",
			"jmsb":    "JMSB Building",
			"ev":      "EV Building",
			"ve":      "Vanier Extension",
			"cc":      "CC Building",
		},
		SupportedBuildings: []string{"hall", "library", "jmsb", "ev", "ve", "cc"},
		IndoorNavBuildings: []string{"hall", "jmsb", "ev", "library", "ve"},
		WalkingTimes: map[string]int{
			"hall":    5,
			"library": 4,
			"jmsb":    4,
			"ev":      6,
			"ve":      3,
			"cc":      4,
		},
		DefaultWalkingTime: 5,
		StopWords: []string{
			"with", "near", "around", "campus", "concordia",
			"university", "montreal", "loyola", "downtown",
		},
		Suggestions: map[string][]string{
			"coffee": {
				"Starbucks on Mackay Street",
				"Second Cup on de Maisonneuve",
				"Café Depot on Ste-Catherine",
				"Tim Hortons in Hall Building",
			},
			"food": {
				"Faubourg Food Court on Ste-Catherine",
				"Le Gym Restaurant in Hall Building",
				"Boustan on Crescent Street",
				"Quesada on de Maisonneuve",
			},
			"study": {
				"Webster Library",
				"Vanier Library",
				"Hall Building study areas",
				"EV Building study spaces",
			},
		},
	}
}

// Resolver normalizes and repairs parsed location data using the fixed
// campus configuration.
type Resolver struct {
	cfg Config
}

// New creates a Resolver around the given configuration.
func New(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

func (r *Resolver) hasIndoorNavigation(buildingID string) bool {
	for _, b := range r.cfg.IndoorNavBuildings {
		if b == buildingID {
			return true
		}
	}
	return false
}

func (r *Resolver) isSupportedBuilding(buildingID string) bool {
	for _, b := range r.cfg.SupportedBuildings {
		if b == buildingID {
			return true
		}
	}
	return false
}

func (r *Resolver) isStopWord(word string) bool {
	for _, w := range r.cfg.StopWords {
		if w == word {
			return true
		}
	}
	return false
}
