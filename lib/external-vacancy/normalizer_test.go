package externalvacancyhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"job-board-backend/models"
	jsearchapimodels "job-board-backend/models/api/jsearch"
)

func TestNormalize(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("full record", func(t *testing.T) {
		raw := jsearchapimodels.JobResult{
			JobID:                 "job-42",
			JobTitle:              "Backend Intern",
			JobDescription:        "Build APIs",
			JobResponsibilities:   []string{"write code"},
			JobRequirements:       []string{"go basics"},
			JobBenefits:           []string{"meal voucher"},
			JobIsRemote:           true,
			JobCity:               "Recife",
			JobLocation:           "PE, Brazil",
			JobSalary:             "R$ 2000",
			NumAvailablePositions: 3,
			EmployerName:          "Acme",
			EmployerWebsite:       "https://acme.example",
			JobApplyEmail:         "jobs@acme.example",
			JobApplyLink:          "https://acme.example/jobs/42",
			JobPostedAt:           "2025-05-20",
		}
		rec := Normalize(raw, now)
		require.Equal(t, "job-42", rec.ExternalID)
		require.Equal(t, models.WorkModeRemote, rec.WorkMode)
		require.Equal(t, "Recife", rec.Location)
		require.Equal(t, "R$ 2000", rec.Salary)
		require.Equal(t, 3, rec.Positions)
		require.Equal(t, models.ContractTypeInternship, rec.ContractType)
		require.Equal(t, models.JobLevelIntern, rec.Level)
		require.Equal(t, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), rec.PublishedAt)
		require.True(t, rec.Active)
	})

	t.Run("missing optional fields get defaults", func(t *testing.T) {
		raw := jsearchapimodels.JobResult{
			JobID:       "job-43",
			JobTitle:    "Intern",
			JobLocation: "PE, Brazil",
		}
		rec := Normalize(raw, now)
		require.Equal(t, models.WorkModeOnsite, rec.WorkMode)
		require.Equal(t, models.NotInformed+", PE, Brazil", rec.Location)
		require.Equal(t, models.NotInformed, rec.Salary)
		require.Equal(t, models.NotInformed, rec.ContactEmail)
		require.Equal(t, []string{models.NotInformed}, rec.Responsibilities)
		require.Equal(t, []string{models.NotInformed}, rec.Requirements)
		require.Equal(t, []string{models.NotInformed}, rec.Perks)
		require.Equal(t, 1, rec.Positions)
	})

	t.Run("unparseable posting date falls back to now", func(t *testing.T) {
		raw := jsearchapimodels.JobResult{
			JobID:       "job-44",
			JobPostedAt: "yesterday",
		}
		rec := Normalize(raw, now)
		require.Equal(t, now, rec.PublishedAt)
	})

	t.Run("rfc3339 posting date", func(t *testing.T) {
		raw := jsearchapimodels.JobResult{
			JobID:       "job-45",
			JobPostedAt: "2025-05-21T10:30:00Z",
		}
		rec := Normalize(raw, now)
		require.Equal(t, time.Date(2025, 5, 21, 10, 30, 0, 0, time.UTC), rec.PublishedAt)
	})
}
