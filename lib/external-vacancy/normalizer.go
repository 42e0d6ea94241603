package externalvacancyhandler

import (
	"time"

	"job-board-backend/lib/utils/helpers"
	"job-board-backend/models"
	jsearchapimodels "job-board-backend/models/api/jsearch"
	dbmodels "job-board-backend/models/db"
)

// Normalize maps one raw provider record into the internal posting shape.
// Every optional provider field gets an explicit default so nothing nullable
// leaks past this boundary. Contract type and level are pinned to internship
// because the fetch filter is fixed to it.
func Normalize(raw jsearchapimodels.JobResult, now time.Time) dbmodels.ExternalVacancy {
	workMode := models.WorkModeOnsite
	if raw.JobIsRemote {
		workMode = models.WorkModeRemote
	}

	// the provider often omits job_city and only fills the coarse
	// job_location, the concatenated fallback keeps both facts visible
	location := raw.JobCity
	if location == "" {
		location = models.NotInformed + ", " + raw.JobLocation
	}

	positions := raw.NumAvailablePositions
	if positions < 1 {
		positions = 1
	}

	publishedAt := now
	if t, ok := helpers.ParseProviderTime(raw.JobPostedAt); ok {
		publishedAt = t
	}

	return dbmodels.ExternalVacancy{
		ExternalID:       raw.JobID,
		Title:            raw.JobTitle,
		Description:      raw.JobDescription,
		Responsibilities: listOrNotInformed(raw.JobResponsibilities),
		Requirements:     listOrNotInformed(raw.JobRequirements),
		Perks:            listOrNotInformed(raw.JobBenefits),
		WorkMode:         workMode,
		Location:         location,
		ContractType:     models.ContractTypeInternship,
		Level:            models.JobLevelIntern,
		Salary:           stringOrNotInformed(raw.JobSalary),
		Positions:        positions,
		CompanyName:      raw.EmployerName,
		CompanyURL:       raw.EmployerWebsite,
		ContactEmail:     stringOrNotInformed(raw.JobApplyEmail),
		ApplyLink:        raw.JobApplyLink,
		PublishedAt:      publishedAt,
		Active:           true,
	}
}

func stringOrNotInformed(value string) string {
	if value == "" {
		return models.NotInformed
	}
	return value
}

func listOrNotInformed(values []string) []string {
	if len(values) == 0 {
		return []string{models.NotInformed}
	}
	return values
}
