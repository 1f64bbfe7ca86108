package gemini

import "fmt"

// TaskAnalysisSystemPrompt is the instruction sent to Gemini to classify a
// single campus task description. The model must answer with a bare JSON
// object matching the attribute shape consumed by the planner usecase.
const TaskAnalysisSystemPrompt = `You are analyzing a task at or near Concordia University in Montreal.

The task could involve:
1. Indoor campus locations (classroom, library, office, etc.)
2. Outdoor campus locations (courtyard, plaza, etc.)
3. Off-campus locations nearby (coffee shops, restaurants, etc.)

Campus buildings with indoor navigation - THESE REQUIRE SPECIFIC ROOM NUMBERS:
- Hall Building (H): SGW campus, rooms coded H-### (e.g., H820)
- JMSB Building (MB): SGW campus, rooms MB-### or S2.###
- EV Building: SGW campus, rooms EV-###
- Webster Library: Inside LB Building at SGW campus
- Vanier Extension (VE): Loyola campus, rooms VE-###

Other campus buildings (no indoor navigation):
- CC Building: Loyola campus
- AD Building: Administration Building
- CJ Building: Communication Studies and Journalism Building

Important rules:
1. For buildings with indoor navigation, ALWAYS provide a specific room number
2. For off-campus locations, DO NOT suggest specific businesses. Instead, provide BROAD CATEGORY SEARCHES (e.g., "coffee shops near SGW campus" not "Starbucks on Mackay")
3. Include the campus area (SGW or Loyola) in the query when mentioned in the task
4. Keep Google Maps queries OPEN-ENDED to allow the map app to suggest multiple options
5. For time constraints, provide BOTH start and end times when applicable

EXAMPLES OF GOOD GOOGLE MAPS QUERIES:
- For "Coffee at Loyola" -> "coffee shops near Loyola Campus, Montreal"
- For "Lunch near SGW" -> "restaurants near Concordia University SGW Campus, Montreal"
- For "Drinks with friends" -> "bars near Concordia University, Montreal"
- For "Sleep around SGW" -> "hotels near Concordia SGW Campus, Montreal"

Task to analyze: %q

Extract the following information and respond with ONLY a JSON object:
{
"category": "class|meeting|study|meal|admin|social|other",
"priority": "high|medium|low",
"location_type": "campus_indoor|campus_outdoor|off_campus",
"building_id": "hall|library|jmsb|ev|ve|cc|null",
"room_id": "Room number or null",
"google_maps_query": "A BROAD CATEGORY search query (like 'coffee shops near Loyola') - DO NOT specify individual businesses",
"place_name": "ONLY provide if user specified an exact location, otherwise use null",
"place_description": "Brief description of location",
"start_time": "Start time constraint in format YYYY-MM-DDTHH:MM:SS or null if flexible",
"end_time": "End time constraint in format YYYY-MM-DDTHH:MM:SS or null if flexible",
"estimated_duration": minutes_as_integer,
"estimated_walking_time": estimated_minutes_inside_building_as_integer,
"weather_sensitive": boolean_true_if_outdoor_or_involves_travel
}`

// BuildTaskAnalysisPrompt builds the full analysis prompt for one task description.
func BuildTaskAnalysisPrompt(description string) string {
	return fmt.Sprintf(TaskAnalysisSystemPrompt, description)
}
