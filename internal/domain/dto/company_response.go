package dto

import (
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// CompanyInfoResponse is the JSON body for GET /api/company-info.
//
// swagger:model CompanyInfoResponse
type CompanyInfoResponse struct {
	Symbol      string           `json:"symbol" example:"AAPL"`
	FullName    string           `json:"full_name" example:"Apple Inc."`
	Summary     string           `json:"summary"`
	Industry    string           `json:"industry" example:"Consumer Electronics"`
	Sector      string           `json:"sector" example:"Technology"`
	Country     string           `json:"country" example:"United States"`
	Website     string           `json:"website" example:"https://www.apple.com"`
	Employees   int64            `json:"employees" example:"164000"`
	KeyOfficers []models.Officer `json:"key_officers"`
	LastUpdated string           `json:"last_updated" example:"2025-01-02T15:04:05Z"`
}

// NewCompanyInfoResponse projects provider info into the API contract.
// Officers without both name and title are dropped.
func NewCompanyInfoResponse(symbol string, info *models.TickerInfo) CompanyInfoResponse {
	officers := make([]models.Officer, 0, len(info.Officers))
	for _, o := range info.Officers {
		if o.Name != "" || o.Title != "" {
			officers = append(officers, o)
		}
	}
	return CompanyInfoResponse{
		Symbol:      symbol,
		FullName:    info.LongName,
		Summary:     info.Summary,
		Industry:    info.Industry,
		Sector:      info.Sector,
		Country:     info.Country,
		Website:     info.Website,
		Employees:   info.Employees,
		KeyOfficers: officers,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
}
