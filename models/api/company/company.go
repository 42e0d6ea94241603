package companyapimodels

import dbmodels "job-board-backend/models/db"

type CompanySummary struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

func ToCompanySummary(rec *dbmodels.Company) CompanySummary {
	if rec == nil {
		return CompanySummary{}
	}
	return CompanySummary{
		ID:          rec.ID,
		Name:        rec.Name,
		Logo:        rec.Logo,
		Location:    rec.Location,
		Description: rec.Description,
	}
}
