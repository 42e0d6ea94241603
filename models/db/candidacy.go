package dbmodels

import (
	"time"

	"job-board-backend/models"
)

// Candidacy is one applicant's application attached to a vacancy. Exactly one
// of VacancyID/ExternalVacancyID is set. The composite unique indexes are the
// source of truth for the one-candidacy-per-(vacancy, applicant) invariant,
// the handler scan is only a fast-path check.
type Candidacy struct {
	BaseModel
	VacancyID         *string `gorm:"type:varchar(36);uniqueIndex:idx_vacancy_applicant"`
	ExternalVacancyID *string `gorm:"type:varchar(36);uniqueIndex:idx_ext_vacancy_applicant"`
	ApplicantID       string  `gorm:"type:varchar(36);uniqueIndex:idx_vacancy_applicant;uniqueIndex:idx_ext_vacancy_applicant"`
	Applicant         *User   `gorm:"foreignKey:ApplicantID"`
	AppliedAt         time.Time
	CoverLetter       string
	Status            models.CandidacyStatus `gorm:"type:varchar(50);default:pending"`
}

// VacancyCandidacy pairs a vacancy with one applicant's candidacy for the
// "my applications" listing.
type VacancyCandidacy struct {
	Vacancy   Vacancy
	Candidacy Candidacy
}

type ExternalVacancyCandidacy struct {
	Vacancy   ExternalVacancy
	Candidacy Candidacy
}
