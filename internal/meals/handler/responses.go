package handler

import (
	"mealog/internal/meals/models"
	"mealog/internal/meals/stats"
)

// RecordResponse is a record plus its day totals.
type RecordResponse struct {
	*models.MealRecord
	Totals models.Totals `json:"totals"`
}

type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	// LoadError is set when the stored collection could not be recovered at
	// start-up and the service started empty.
	LoadError string `json:"load_error,omitempty"`
}

type CalendarResponse struct {
	Month string   `json:"month,omitempty"`
	Dates []string `json:"dates"`
}

type TrendResponse struct {
	Days   int           `json:"days"`
	Points []stats.Point `json:"points"`
}

func toRecordResponse(r *models.MealRecord) RecordResponse {
	return RecordResponse{MealRecord: r, Totals: stats.DayTotals(r)}
}
