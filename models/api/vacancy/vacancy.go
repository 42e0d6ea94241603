package vacancyapimodels

import (
	"time"

	"github.com/pkg/errors"
	"job-board-backend/models"
	companyapimodels "job-board-backend/models/api/company"
	dbmodels "job-board-backend/models/db"
)

type VacancyData struct {
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Responsibilities []string            `json:"responsibilities"`
	Requirements     []string            `json:"requirements"`
	NiceToHaves      []string            `json:"nice_to_haves"`
	Perks            []string            `json:"perks"`
	WorkMode         models.WorkMode     `json:"work_mode"`
	Location         string              `json:"location"`
	ContractType     models.ContractType `json:"contract_type"`
	Level            models.JobLevel     `json:"level"`
	Salary           string              `json:"salary"`
	Positions        int                 `json:"positions"`
	CompanyID        string              `json:"company_id"` //ignored for company callers, their own company is used
	ContactEmail     string              `json:"contact_email"`
	ApplyLink        string              `json:"apply_link"`
}

func (d VacancyData) Validate() error {
	if d.Title == "" {
		return errors.Wrap(models.ErrValidation, "title is required")
	}
	if d.Description == "" {
		return errors.Wrap(models.ErrValidation, "description is required")
	}
	if !d.WorkMode.IsValid() {
		return errors.Wrap(models.ErrValidation, "unknown work mode")
	}
	if !d.ContractType.IsValid() {
		return errors.Wrap(models.ErrValidation, "unknown contract type")
	}
	if !d.Level.IsValid() {
		return errors.Wrap(models.ErrValidation, "unknown level")
	}
	if d.Salary == "" {
		return errors.Wrap(models.ErrValidation, "salary is required")
	}
	if d.Positions < 1 {
		return errors.Wrap(models.ErrValidation, "positions must be at least 1")
	}
	if d.ContactEmail == "" {
		return errors.Wrap(models.ErrValidation, "contact email is required")
	}
	return nil
}

type VacancySort struct {
	OldestFirst bool `json:"oldest_first"` //default is newest first
}

type VacancyFilter struct {
	Search       string              `json:"search"` //case-insensitive substring over title/description/lists/company name
	WorkMode     models.WorkMode     `json:"work_mode"`
	ContractType models.ContractType `json:"contract_type"`
	Level        models.JobLevel     `json:"level"`
	Location     string              `json:"location"` //substring match
	Company      string              `json:"company"`  //company id or name substring
	Sort         VacancySort         `json:"sort"`
}

func (f VacancyFilter) Validate() error {
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

type VacancyView struct {
	ID               string                            `json:"id"`
	Title            string                            `json:"title"`
	Description      string                            `json:"description"`
	Responsibilities []string                          `json:"responsibilities"`
	Requirements     []string                          `json:"requirements"`
	NiceToHaves      []string                          `json:"nice_to_haves,omitempty"`
	Perks            []string                          `json:"perks"`
	WorkMode         models.WorkMode                   `json:"work_mode"`
	Location         string                            `json:"location"`
	ContractType     models.ContractType               `json:"contract_type"`
	Level            models.JobLevel                   `json:"level"`
	Salary           string                            `json:"salary"`
	Positions        int                               `json:"positions"`
	Company          companyapimodels.CompanySummary   `json:"company"`
	ContactEmail     string                            `json:"contact_email"`
	ApplyLink        string                            `json:"apply_link"`
	PublishedAt      time.Time                         `json:"published_at"`
	Active           bool                              `json:"active"`
}

func ToVacancyView(rec dbmodels.Vacancy) VacancyView {
	return VacancyView{
		ID:               rec.ID,
		Title:            rec.Title,
		Description:      rec.Description,
		Responsibilities: rec.Responsibilities,
		Requirements:     rec.Requirements,
		NiceToHaves:      rec.NiceToHaves,
		Perks:            rec.Perks,
		WorkMode:         rec.WorkMode,
		Location:         rec.Location,
		ContractType:     rec.ContractType,
		Level:            rec.Level,
		Salary:           rec.Salary,
		Positions:        rec.Positions,
		Company:          companyapimodels.ToCompanySummary(rec.Company),
		ContactEmail:     rec.ContactEmail,
		ApplyLink:        rec.ApplyLink,
		PublishedAt:      rec.PublishedAt,
		Active:           rec.Active,
	}
}
