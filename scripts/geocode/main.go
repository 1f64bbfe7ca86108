// scripts/geocode/main.go
//
// Looks up coordinates and viewport bounds for the campus buildings via the
// Google Geocoding API. Used when refreshing the building tables.
//
// Usage:
//   GOOGLEMAPS_API_KEY=... go run scripts/geocode/main.go
//   GOOGLEMAPS_API_KEY=... go run scripts/geocode/main.go "1455 De Maisonneuve Blvd W, Montreal"

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

var buildingAddresses = map[string]string{
	"hall":    "1455 De Maisonneuve Blvd W, Montreal, QC",
	"library": "1400 De Maisonneuve Blvd W, Montreal, QC",
	"jmsb":    "1450 Guy St, Montreal, QC",
	"ev":      "1515 St Catherine St W, Montreal, QC",
	"ve":      "7141 Sherbrooke St W, Montreal, QC",
	"cc":      "7141 Sherbrooke St W, Montreal, QC",
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
			Viewport struct {
				Northeast struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"northeast"`
				Southwest struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"southwest"`
			} `json:"viewport"`
		} `json:"geometry"`
	} `json:"results"`
}

func main() {
	apiKey := os.Getenv("GOOGLEMAPS_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLEMAPS_API_KEY is required")
	}

	client := &http.Client{Timeout: 15 * time.Second}

	if len(os.Args) > 1 {
		lookup(client, apiKey, "address", os.Args[1])
		return
	}

	for id, address := range buildingAddresses {
		lookup(client, apiKey, id, address)
	}
}

func lookup(client *http.Client, apiKey, label, address string) {
	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s",
		url.QueryEscape(address), url.QueryEscape(apiKey),
	)

	resp, err := client.Get(endpoint)
	if err != nil {
		log.Printf("%s: request failed: %v", label, err)
		return
	}
	defer resp.Body.Close()

	var result geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("%s: bad response: %v", label, err)
		return
	}

	if result.Status != "OK" || len(result.Results) == 0 {
		log.Printf("%s: no results (status %s)", label, result.Status)
		return
	}

	g := result.Results[0].Geometry
	fmt.Printf("%s: %s\n", label, result.Results[0].FormattedAddress)
	fmt.Printf("  location: %.6f, %.6f\n", g.Location.Lat, g.Location.Lng)
	fmt.Printf("  viewport: NE(%.6f, %.6f) SW(%.6f, %.6f)\n",
		g.Viewport.Northeast.Lat, g.Viewport.Northeast.Lng,
		g.Viewport.Southwest.Lat, g.Viewport.Southwest.Lng)
}
