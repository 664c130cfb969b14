package repository

import "trustrate-srv/internal/model"

// CreateAnalysisOptions carries one analysis row to persist.
type CreateAnalysisOptions struct {
	Analysis model.Analysis
}
