package models

import (
	"time"
)

// LocationSnapshot — неизменяемый снимок местоположения на момент захвата.
// Новый снимок полностью заменяет закешированный при каждой попытке resolve.
type LocationSnapshot struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Address   string    `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
