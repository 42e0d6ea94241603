package vacancyapimodels

import (
	"time"

	"github.com/pkg/errors"
	"job-board-backend/models"
	companyapimodels "job-board-backend/models/api/company"
	dbmodels "job-board-backend/models/db"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type CandidacyStatusRequest struct {
	Status models.CandidacyStatus `json:"status"`
}

func (r CandidacyStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.Wrapf(models.ErrInvalidTransition, "status %q", r.Status)
	}
	return nil
}

type CandidacyView struct {
	ID          string                 `json:"id"`
	ApplicantID string                 `json:"applicant_id"`
	AppliedAt   time.Time              `json:"applied_at"`
	CoverLetter string                 `json:"cover_letter,omitempty"`
	Status      models.CandidacyStatus `json:"status"`
}

func ToCandidacyView(rec dbmodels.Candidacy) CandidacyView {
	return CandidacyView{
		ID:          rec.ID,
		ApplicantID: rec.ApplicantID,
		AppliedAt:   rec.AppliedAt,
		CoverLetter: rec.CoverLetter,
		Status:      rec.Status,
	}
}

// MyApplicationView is one flattened "my applications" record: the vacancy
// summary, the caller's single candidacy and the denormalized company. Other
// applicants' candidacies never appear here.
type MyApplicationView struct {
	VacancyID   string                          `json:"vacancy_id"`
	External    bool                            `json:"external"`
	Title       string                          `json:"title"`
	Description string                          `json:"description"`
	WorkMode    models.WorkMode                 `json:"work_mode"`
	Location    string                          `json:"location"`
	ContractType models.ContractType            `json:"contract_type"`
	Level       models.JobLevel                 `json:"level"`
	Salary      string                          `json:"salary"`
	PublishedAt time.Time                       `json:"published_at"`
	Candidacy   CandidacyView                   `json:"candidacy"`
	Company     companyapimodels.CompanySummary `json:"company"`
}

type CandidateSummary struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location"`
	Photo    string `json:"photo,omitempty"`
}

// ReviewCandidacyView is the flattened record the company review screen
// consumes: one row per candidacy across the company's vacancies.
type ReviewCandidacyView struct {
	ID           string                 `json:"id"`
	Candidate    CandidateSummary       `json:"candidate"`
	VacancyID    string                 `json:"vacancy_id"`
	VacancyTitle string                 `json:"vacancy_title"`
	AppliedAt    string                 `json:"applied_at"` //YYYY-MM-DD
	Status       models.CandidacyStatus `json:"status"`
	CoverLetter  string                 `json:"cover_letter,omitempty"`
}

type ReviewListView struct {
	TotalVacancies   int                   `json:"total_vacancies"`
	TotalCandidacies int                   `json:"total_candidacies"`
	Candidacies      []ReviewCandidacyView `json:"candidacies"`
}
