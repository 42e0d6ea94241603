package vacancyapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"job-board-backend/models"
)

func TestVacancyDataValidate(t *testing.T) {
	valid := VacancyData{
		Title:        "Backend Intern",
		Description:  "Build APIs",
		WorkMode:     models.WorkModeRemote,
		ContractType: models.ContractTypeInternship,
		Level:        models.JobLevelIntern,
		Salary:       "R$ 2000",
		Positions:    1,
		ContactEmail: "jobs@acme.example",
	}
	require.NoError(t, valid.Validate())

	t.Run("missing required fields", func(t *testing.T) {
		for _, mutate := range []func(*VacancyData){
			func(d *VacancyData) { d.Title = "" },
			func(d *VacancyData) { d.Description = "" },
			func(d *VacancyData) { d.Salary = "" },
			func(d *VacancyData) { d.ContactEmail = "" },
			func(d *VacancyData) { d.Positions = 0 },
			func(d *VacancyData) { d.WorkMode = "underwater" },
			func(d *VacancyData) { d.ContractType = "gig" },
			func(d *VacancyData) { d.Level = "principal" },
		} {
			data := valid
			mutate(&data)
			require.ErrorIs(t, data.Validate(), models.ErrValidation)
		}
	})
}

func TestVacancyFilterValidate(t *testing.T) {
	require.NoError(t, VacancyFilter{}.Validate())
	require.NoError(t, VacancyFilter{WorkMode: models.WorkModeHybrid}.Validate())
	require.ErrorIs(t, VacancyFilter{WorkMode: "underwater"}.Validate(), models.ErrValidation)
	require.ErrorIs(t, VacancyFilter{Level: "principal"}.Validate(), models.ErrValidation)
}

func TestCandidacyStatusRequestValidate(t *testing.T) {
	require.NoError(t, CandidacyStatusRequest{Status: models.CandidacyStatusViewed}.Validate())
	require.ErrorIs(t, CandidacyStatusRequest{Status: "archived"}.Validate(), models.ErrInvalidTransition)
}
