// Package catalog holds the hand-authored trip itinerary. The data is a
// compile-time fixture: no runtime component owns or mutates it, every
// consumer gets a read-only view.
package catalog

import (
	"encoding/json"
	"fmt"
)

const (
	Hotel       ActivityType = "HOTEL"
	Food        ActivityType = "FOOD"
	Sightseeing ActivityType = "SIGHTSEEING"
	Shopping    ActivityType = "SHOPPING"
	Transport   ActivityType = "TRANSPORT"
	Other       ActivityType = "OTHER"
)

type (
	ActivityType string

	Coordinates struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	Weather struct {
		Temp      string `json:"temp"`
		High      string `json:"high"`
		Low       string `json:"low"`
		Condition string `json:"condition"`
		Icon      string `json:"icon"`
	}

	Activity struct {
		ID          string       `json:"id"`
		Time        string       `json:"time,omitempty"`
		Title       string       `json:"title"`
		JPTitle     string       `json:"jpTitle,omitempty"` // shown to clerks, kept in Japanese
		Location    string       `json:"location"`
		Notes       []string     `json:"notes"`
		Type        ActivityType `json:"type"`
		Important   bool         `json:"important,omitempty"`
		MapQuery    string       `json:"mapQuery,omitempty"`
		MapURL      string       `json:"mapUrl,omitempty"`
		ImageURL    string       `json:"imageUrl,omitempty"`
		Coordinates *Coordinates `json:"coordinates,omitempty"`
	}

	Day struct {
		Date        string     `json:"date"`
		DisplayDate string     `json:"displayDate"`
		Weekday     string     `json:"weekday"`
		Title       string     `json:"title"`
		HeroImage   string     `json:"heroImage"`
		Weather     Weather    `json:"weather"`
		Clothing    string     `json:"clothingSuggestion"`
		Activities  []Activity `json:"activities"`
	}

	// Marker is the payload handed to the map widget for one activity.
	// Activities without coordinates produce no marker.
	Marker struct {
		Lat      float64 `json:"lat"`
		Lng      float64 `json:"lng"`
		Type     string  `json:"category"`
		Color    string  `json:"color"`
		Day      string  `json:"day"`
		Title    string  `json:"title"`
		Subtitle string  `json:"subtitle"`
	}
)

// Days returns the itinerary in trip order.
func Days() []Day {
	return itinerary
}

// MarkerColor maps an activity type to its marker color.
func MarkerColor(t ActivityType) string {
	switch t {
	case Food:
		return "#fb7185"
	case Shopping:
		return "#fdba74"
	case Sightseeing:
		return "#10b981"
	case Hotel:
		return "#1e293b"
	case Transport:
		return "#60a5fa"
	}
	return "#94a3b8"
}

// Markers flattens the itinerary into map markers. The popup subtitle
// prefers the Japanese title and falls back to the location label.
func Markers() []Marker {
	var out []Marker
	for _, day := range itinerary {
		for _, a := range day.Activities {
			if a.Coordinates == nil {
				continue
			}
			subtitle := a.JPTitle
			if subtitle == "" {
				subtitle = a.Location
			}
			out = append(out, Marker{
				Lat:      a.Coordinates.Lat,
				Lng:      a.Coordinates.Lng,
				Type:     string(a.Type),
				Color:    MarkerColor(a.Type),
				Day:      day.DisplayDate,
				Title:    a.Title,
				Subtitle: subtitle,
			})
		}
	}
	return out
}

// Context serializes the full itinerary as indented JSON for embedding
// into the chat assistant's system instruction.
func Context() (string, error) {
	b, err := json.MarshalIndent(itinerary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize itinerary: %w", err)
	}
	return string(b), nil
}
