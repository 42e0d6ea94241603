package externalvacancyapimodels

import (
	"time"

	"github.com/pkg/errors"
	"job-board-backend/models"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

// ImportRequest overrides the configured provider defaults for one cycle.
type ImportRequest struct {
	Query   string `json:"query"`
	Pages   int    `json:"pages"`
	Country string `json:"country"`
}

type ImportResult struct {
	InsertedCount int                   `json:"inserted_count"`
	Inserted      []ExternalVacancyView `json:"inserted"`
}

type ExternalVacancyFilter struct {
	Search       string                      `json:"search"`
	WorkMode     models.WorkMode             `json:"work_mode"`
	ContractType models.ContractType         `json:"contract_type"`
	Level        models.JobLevel             `json:"level"`
	Location     string                      `json:"location"`
	Company      string                      `json:"company"` //company name substring, the provider has no company ids
	Sort         vacancyapimodels.VacancySort `json:"sort"`
}

func (f ExternalVacancyFilter) Validate() error {
	if f.WorkMode != "" && !f.WorkMode.IsValid() {
		return errors.Wrap(models.ErrValidation, "unknown work mode")
	}
	if f.ContractType != "" && !f.ContractType.IsValid() {
		return errors.Wrap(models.ErrValidation, "unknown contract type")
	}
	if f.Level != "" && !f.Level.IsValid() {
		return errors.Wrap(models.ErrValidation, "unknown level")
	}
	return nil
}

type ExternalVacancyView struct {
	ID               string              `json:"id"`
	ExternalID       string              `json:"external_id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Responsibilities []string            `json:"responsibilities"`
	Requirements     []string            `json:"requirements"`
	Perks            []string            `json:"perks"`
	WorkMode         models.WorkMode     `json:"work_mode"`
	Location         string              `json:"location"`
	ContractType     models.ContractType `json:"contract_type"`
	Level            models.JobLevel     `json:"level"`
	Salary           string              `json:"salary"`
	Positions        int                 `json:"positions"`
	CompanyName      string              `json:"company_name"`
	CompanyURL       string              `json:"company_url,omitempty"`
	ContactEmail     string              `json:"contact_email"`
	ApplyLink        string              `json:"apply_link"`
	PublishedAt      time.Time           `json:"published_at"`
	Active           bool                `json:"active"`
}

func ToExternalVacancyView(rec dbmodels.ExternalVacancy) ExternalVacancyView {
	return ExternalVacancyView{
		ID:               rec.ID,
		ExternalID:       rec.ExternalID,
		Title:            rec.Title,
		Description:      rec.Description,
		Responsibilities: rec.Responsibilities,
		Requirements:     rec.Requirements,
		Perks:            rec.Perks,
		WorkMode:         rec.WorkMode,
		Location:         rec.Location,
		ContractType:     rec.ContractType,
		Level:            rec.Level,
		Salary:           rec.Salary,
		Positions:        rec.Positions,
		CompanyName:      rec.CompanyName,
		CompanyURL:       rec.CompanyURL,
		ContactEmail:     rec.ContactEmail,
		ApplyLink:        rec.ApplyLink,
		PublishedAt:      rec.PublishedAt,
		Active:           rec.Active,
	}
}
