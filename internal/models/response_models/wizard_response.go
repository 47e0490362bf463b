package response_models

import (
	"tripdoc/internal/models/trip_models"
)

type SessionResponse struct {
	ID            string               `json:"id"`
	Step          string               `json:"step"`
	Lang          string               `json:"lang"`
	Draft         trip_models.TripData `json:"draft"`
	Candidates    map[string][]string  `json:"candidates,omitempty"`
	Selections    map[string]string    `json:"selections,omitempty"`
	Introductions map[string]string    `json:"introductions,omitempty"`
	MissingImages []string             `json:"missing_images,omitempty"`
	StageError    string               `json:"stage_error,omitempty"`
}
