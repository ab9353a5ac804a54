// Package models defines data structures shared across the tool.
package models

import "time"

// Nutrient is a single labelled quantity from the recipe's nutrition data.
// Kept as an ordered slice rather than a map so rendered output is stable.
type Nutrient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Recipe holds the structured fields extracted from one recipe page. It is
// created fresh per invocation, optionally mutated in place by translation,
// and discarded after rendering.
type Recipe struct {
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	TotalTime    int        `json:"total_time"` // minutes
	Yield        string     `json:"yield"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	ImageURL     string     `json:"image_url"`
	Host         string     `json:"host"`
	SourceURL    string     `json:"source_url"`
	Nutrients    []Nutrient `json:"nutrients,omitempty"`
	ScrapedAt    time.Time  `json:"scraped_at"`
}
