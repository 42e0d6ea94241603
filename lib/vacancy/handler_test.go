package vacancyhandler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	xlsexport "job-board-backend/lib/export/xls"
	"job-board-backend/models"
	externalvacancyapimodels "job-board-backend/models/api/externalvacancy"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

// fakeVacancyStore serializes access the way the database would, so
// handler tests can exercise concurrent callers.
type fakeVacancyStore struct {
	mu         sync.Mutex
	vacancies  map[string]*dbmodels.Vacancy
	applicants map[string]*dbmodels.User
	nextID     int
	nextCandID int
}

func newFakeVacancyStore() *fakeVacancyStore {
	return &fakeVacancyStore{
		vacancies:  map[string]*dbmodels.Vacancy{},
		applicants: map[string]*dbmodels.User{},
	}
}

func (f *fakeVacancyStore) Create(rec dbmodels.Vacancy) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	rec.ID = fmt.Sprintf("vac-%d", f.nextID)
	f.vacancies[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeVacancyStore) GetByID(id string) (*dbmodels.Vacancy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.vacancies[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.Candidacies = append([]dbmodels.Candidacy{}, rec.Candidacies...)
	return &cp, nil
}

func (f *fakeVacancyStore) GetByTitle(title string) (*dbmodels.Vacancy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var newest *dbmodels.Vacancy
	for _, rec := range f.vacancies {
		if rec.Title != title {
			continue
		}
		if newest == nil || rec.CreatedAt.After(newest.CreatedAt) {
			newest = rec
		}
	}
	return newest, nil
}

func (f *fakeVacancyStore) Update(id string, updMap map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.vacancies[id]
	if !ok {
		return models.ErrNotFound
	}
	if title, ok := updMap["title"].(string); ok {
		rec.Title = title
	}
	return nil
}

func (f *fakeVacancyStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.vacancies[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.vacancies, id)
	return nil
}

func (f *fakeVacancyStore) List(filter vacancyapimodels.VacancyFilter, companyIDs []string) ([]dbmodels.Vacancy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []dbmodels.Vacancy{}
	for _, rec := range f.vacancies {
		if len(companyIDs) > 0 {
			matched := false
			for _, id := range companyIDs {
				if rec.CompanyID == id {
					matched = true
				}
			}
			if !matched {
				continue
			}
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeVacancyStore) AddCandidacy(rec dbmodels.Candidacy) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vacancy, ok := f.vacancies[*rec.VacancyID]
	if !ok {
		return "", models.ErrStorage
	}
	for _, c := range vacancy.Candidacies {
		if c.ApplicantID == rec.ApplicantID {
			return "", models.ErrAlreadyApplied
		}
	}
	f.nextCandID++
	rec.ID = fmt.Sprintf("cand-%d", f.nextCandID)
	rec.Applicant = f.applicants[rec.ApplicantID]
	vacancy.Candidacies = append(vacancy.Candidacies, rec)
	return rec.ID, nil
}

func (f *fakeVacancyStore) GetCandidacy(vacancyID, candidacyID string) (*dbmodels.Candidacy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vacancy, ok := f.vacancies[vacancyID]
	if !ok {
		return nil, nil
	}
	for idx := range vacancy.Candidacies {
		if vacancy.Candidacies[idx].ID == candidacyID {
			return &vacancy.Candidacies[idx], nil
		}
	}
	return nil, nil
}

func (f *fakeVacancyStore) UpdateCandidacyStatus(vacancyID, candidacyID string, status models.CandidacyStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	vacancy, ok := f.vacancies[vacancyID]
	if !ok {
		return models.ErrNotFound
	}
	for idx := range vacancy.Candidacies {
		if vacancy.Candidacies[idx].ID == candidacyID {
			vacancy.Candidacies[idx].Status = status
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeVacancyStore) ListByApplicant(applicantID string) ([]dbmodels.VacancyCandidacy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []dbmodels.VacancyCandidacy{}
	for _, vacancy := range f.vacancies {
		for _, c := range vacancy.Candidacies {
			if c.ApplicantID == applicantID {
				list = append(list, dbmodels.VacancyCandidacy{Vacancy: *vacancy, Candidacy: c})
			}
		}
	}
	return list, nil
}

func (f *fakeVacancyStore) ListByCompany(companyID string) ([]dbmodels.Vacancy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []dbmodels.Vacancy{}
	for _, rec := range f.vacancies {
		if rec.CompanyID == companyID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakeUserStore struct {
	users map[string]*dbmodels.User
}

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	return f.users[id], nil
}

type fakeCompanyStore struct {
	byID     map[string]*dbmodels.Company
	byUserID map[string]*dbmodels.Company
}

func newFakeCompanyStore(companies ...dbmodels.Company) *fakeCompanyStore {
	f := &fakeCompanyStore{
		byID:     map[string]*dbmodels.Company{},
		byUserID: map[string]*dbmodels.Company{},
	}
	for idx := range companies {
		rec := companies[idx]
		f.byID[rec.ID] = &rec
		if rec.UserID != nil {
			f.byUserID[*rec.UserID] = &rec
		}
	}
	return f
}

func (f *fakeCompanyStore) GetByID(id string) (*dbmodels.Company, error) {
	return f.byID[id], nil
}

func (f *fakeCompanyStore) GetByUserID(userID string) (*dbmodels.Company, error) {
	return f.byUserID[userID], nil
}

func (f *fakeCompanyStore) FindIDsByName(nameSubstring string) ([]string, error) {
	ids := []string{}
	for id := range f.byID {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeExternalStore struct {
	candidacies []dbmodels.ExternalVacancyCandidacy
}

func (f *fakeExternalStore) Create(ctx context.Context, rec *dbmodels.ExternalVacancy) (bool, error) {
	return false, nil
}
func (f *fakeExternalStore) GetByExternalID(ctx context.Context, externalID string) (*dbmodels.ExternalVacancy, error) {
	return nil, nil
}
func (f *fakeExternalStore) GetByID(id string) (*dbmodels.ExternalVacancy, error) { return nil, nil }
func (f *fakeExternalStore) GetByTitle(title string) (*dbmodels.ExternalVacancy, error) {
	return nil, nil
}
func (f *fakeExternalStore) Delete(id string) error { return nil }
func (f *fakeExternalStore) List(filter externalvacancyapimodels.ExternalVacancyFilter) ([]dbmodels.ExternalVacancy, error) {
	return nil, nil
}
func (f *fakeExternalStore) AddCandidacy(rec dbmodels.Candidacy) (string, error) { return "", nil }
func (f *fakeExternalStore) ListByApplicant(applicantID string) ([]dbmodels.ExternalVacancyCandidacy, error) {
	list := []dbmodels.ExternalVacancyCandidacy{}
	for _, item := range f.candidacies {
		if item.Candidacy.ApplicantID == applicantID {
			list = append(list, item)
		}
	}
	return list, nil
}

func validData() vacancyapimodels.VacancyData {
	return vacancyapimodels.VacancyData{
		Title:        "Backend Intern",
		Description:  "Build APIs",
		WorkMode:     models.WorkModeRemote,
		Location:     "Recife",
		ContractType: models.ContractTypeInternship,
		Level:        models.JobLevelIntern,
		Salary:       "R$ 2000",
		Positions:    2,
		ContactEmail: "jobs@acme.example",
	}
}

func testHandler() (impl, *fakeVacancyStore, *fakeExternalStore) {
	ownerID := "owner-1"
	otherOwnerID := "owner-2"
	store := newFakeVacancyStore()
	store.applicants["user-1"] = &dbmodels.User{
		BaseModel: dbmodels.BaseModel{ID: "user-1"},
		Name:      "Ana",
		Email:     "ana@example.com",
		Location:  "Recife",
	}
	store.applicants["user-2"] = &dbmodels.User{
		BaseModel: dbmodels.BaseModel{ID: "user-2"},
		Name:      "Bruno",
		Email:     "bruno@example.com",
		Location:  "Olinda",
	}
	externalStore := &fakeExternalStore{}
	companies := newFakeCompanyStore(
		dbmodels.Company{BaseModel: dbmodels.BaseModel{ID: "comp-1"}, Name: "Acme", UserID: &ownerID},
		dbmodels.Company{BaseModel: dbmodels.BaseModel{ID: "comp-2"}, Name: "Globex", UserID: &otherOwnerID},
	)
	return impl{
		store:         store,
		externalStore: externalStore,
		companyStore:  companies,
		userStore:     &fakeUserStore{users: store.applicants},
	}, store, externalStore
}

func TestVacancyLifecycle(t *testing.T) {
	companyCaller := models.Caller{UserID: "owner-1", Role: models.UserRoleCompany}
	otherCompany := models.Caller{UserID: "owner-2", Role: models.UserRoleCompany}
	adminCaller := models.Caller{UserID: "admin-1", Role: models.UserRoleAdmin}
	applicantCaller := models.Caller{UserID: "user-1", Role: models.UserRoleApplicant}

	t.Run("company creates under its own company", func(t *testing.T) {
		h, store, _ := testHandler()
		id, err := h.Create(companyCaller, validData())
		require.NoError(t, err)
		require.Equal(t, "comp-1", store.vacancies[id].CompanyID)
		require.True(t, store.vacancies[id].Active)
	})

	t.Run("applicant cannot create", func(t *testing.T) {
		h, _, _ := testHandler()
		_, err := h.Create(applicantCaller, validData())
		require.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("admin creates for a named company", func(t *testing.T) {
		h, store, _ := testHandler()
		data := validData()
		data.CompanyID = "comp-2"
		id, err := h.Create(adminCaller, data)
		require.NoError(t, err)
		require.Equal(t, "comp-2", store.vacancies[id].CompanyID)
	})

	t.Run("update is owner only", func(t *testing.T) {
		h, _, _ := testHandler()
		id, err := h.Create(companyCaller, validData())
		require.NoError(t, err)

		err = h.Update(otherCompany, id, validData())
		require.ErrorIs(t, err, models.ErrForbidden)

		err = h.Update(companyCaller, id, validData())
		require.NoError(t, err)
	})

	t.Run("delete is owner or admin", func(t *testing.T) {
		h, store, _ := testHandler()
		id, err := h.Create(companyCaller, validData())
		require.NoError(t, err)

		err = h.Delete(otherCompany, id)
		require.ErrorIs(t, err, models.ErrForbidden)

		err = h.Delete(adminCaller, id)
		require.NoError(t, err)
		require.Empty(t, store.vacancies)
	})

	t.Run("get unknown id", func(t *testing.T) {
		h, _, _ := testHandler()
		_, err := h.GetByID("missing")
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("get by empty title", func(t *testing.T) {
		h, _, _ := testHandler()
		_, err := h.GetByTitle("")
		require.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("company list is scoped to its own postings", func(t *testing.T) {
		h, _, _ := testHandler()
		_, err := h.Create(companyCaller, validData())
		require.NoError(t, err)
		data := validData()
		data.CompanyID = "comp-2"
		_, err = h.Create(adminCaller, data)
		require.NoError(t, err)

		list, err := h.List(companyCaller, vacancyapimodels.VacancyFilter{})
		require.NoError(t, err)
		require.Len(t, list, 1)

		list, err = h.List(applicantCaller, vacancyapimodels.VacancyFilter{})
		require.NoError(t, err)
		require.Len(t, list, 2)
	})
}

func TestCandidacyStateMachine(t *testing.T) {
	companyCaller := models.Caller{UserID: "owner-1", Role: models.UserRoleCompany}
	otherCompany := models.Caller{UserID: "owner-2", Role: models.UserRoleCompany}

	setup := func(t *testing.T) (impl, string, string) {
		h, _, _ := testHandler()
		vacancyID, err := h.Create(companyCaller, validData())
		require.NoError(t, err)
		view, err := h.Apply(vacancyID, "user-1", "hello")
		require.NoError(t, err)
		return h, vacancyID, view.ID
	}

	t.Run("apply starts pending", func(t *testing.T) {
		h, vacancyID, candidacyID := setup(t)
		rec, err := h.store.GetCandidacy(vacancyID, candidacyID)
		require.NoError(t, err)
		require.Equal(t, models.CandidacyStatusPending, rec.Status)
	})

	t.Run("duplicate apply is rejected", func(t *testing.T) {
		h, vacancyID, _ := setup(t)
		_, err := h.Apply(vacancyID, "user-1", "again")
		require.ErrorIs(t, err, models.ErrAlreadyApplied)
	})

	t.Run("any valid status is reachable from any other", func(t *testing.T) {
		h, vacancyID, candidacyID := setup(t)
		sequence := []models.CandidacyStatus{
			models.CandidacyStatusApproved,
			models.CandidacyStatusViewed,
			models.CandidacyStatusRejected,
			models.CandidacyStatusPending,
		}
		for _, status := range sequence {
			err := h.ChangeCandidacyStatus(companyCaller, vacancyID, candidacyID, status)
			require.NoError(t, err)
			rec, err := h.store.GetCandidacy(vacancyID, candidacyID)
			require.NoError(t, err)
			require.Equal(t, status, rec.Status)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		h, vacancyID, candidacyID := setup(t)
		err := h.ChangeCandidacyStatus(companyCaller, vacancyID, candidacyID, "archived")
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("non-owner cannot change status", func(t *testing.T) {
		h, vacancyID, candidacyID := setup(t)
		err := h.ChangeCandidacyStatus(otherCompany, vacancyID, candidacyID, models.CandidacyStatusViewed)
		require.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("simultaneous applies settle on one candidacy", func(t *testing.T) {
		h, store, _ := testHandler()
		vacancyID, err := h.Create(companyCaller, validData())
		require.NoError(t, err)

		results := make(chan error, 2)
		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := h.Apply(vacancyID, "user-1", "")
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var succeeded, rejected int
		for err := range results {
			if err == nil {
				succeeded++
				continue
			}
			require.ErrorIs(t, err, models.ErrAlreadyApplied)
			rejected++
		}
		require.Equal(t, 1, succeeded)
		require.Equal(t, 1, rejected)
		require.Len(t, store.vacancies[vacancyID].Candidacies, 1)
	})

	t.Run("unknown applicant cannot apply", func(t *testing.T) {
		h, vacancyID, _ := setup(t)
		_, err := h.Apply(vacancyID, "ghost", "")
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("unknown candidacy", func(t *testing.T) {
		h, vacancyID, _ := setup(t)
		err := h.ChangeCandidacyStatus(companyCaller, vacancyID, "missing", models.CandidacyStatusViewed)
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("candidacy listing is owner only", func(t *testing.T) {
		h, vacancyID, _ := setup(t)
		_, err := h.VacancyCandidacies(otherCompany, vacancyID)
		require.ErrorIs(t, err, models.ErrForbidden)

		list, err := h.VacancyCandidacies(companyCaller, vacancyID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}

func TestApplicantCandidacies(t *testing.T) {
	companyCaller := models.Caller{UserID: "owner-1", Role: models.UserRoleCompany}

	h, _, externalStore := testHandler()
	vacancyID, err := h.Create(companyCaller, validData())
	require.NoError(t, err)
	_, err = h.Apply(vacancyID, "user-1", "")
	require.NoError(t, err)
	_, err = h.Apply(vacancyID, "user-2", "")
	require.NoError(t, err)

	externalStore.candidacies = []dbmodels.ExternalVacancyCandidacy{
		{
			Vacancy: dbmodels.ExternalVacancy{
				BaseModel:   dbmodels.BaseModel{ID: "ext-1"},
				Title:       "Imported Intern",
				CompanyName: "Initech",
				PublishedAt: time.Now(),
			},
			Candidacy: dbmodels.Candidacy{
				BaseModel:   dbmodels.BaseModel{ID: "cand-ext-1"},
				ApplicantID: "user-1",
				Status:      models.CandidacyStatusPending,
			},
		},
	}

	list, err := h.ListApplicantCandidacies("user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, item := range list {
		require.Equal(t, "user-1", item.Candidacy.ApplicantID)
	}

	var external, internal int
	for _, item := range list {
		if item.External {
			external++
			require.Equal(t, "Initech", item.Company.Name)
		} else {
			internal++
		}
	}
	require.Equal(t, 1, internal)
	require.Equal(t, 1, external)

	list, err = h.ListApplicantCandidacies("user-3")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCompanyCandidacyReview(t *testing.T) {
	companyCaller := models.Caller{UserID: "owner-1", Role: models.UserRoleCompany}
	applicantCaller := models.Caller{UserID: "user-1", Role: models.UserRoleApplicant}

	h, _, _ := testHandler()
	firstID, err := h.Create(companyCaller, validData())
	require.NoError(t, err)
	secondID, err := h.Create(companyCaller, validData())
	require.NoError(t, err)
	_, err = h.Apply(firstID, "user-1", "")
	require.NoError(t, err)
	_, err = h.Apply(secondID, "user-1", "")
	require.NoError(t, err)
	_, err = h.Apply(secondID, "user-2", "")
	require.NoError(t, err)

	t.Run("review counts vacancies and candidacies", func(t *testing.T) {
		review, err := h.CompanyCandidacies(companyCaller, "")
		require.NoError(t, err)
		require.Equal(t, 2, review.TotalVacancies)
		require.Equal(t, 3, review.TotalCandidacies)
		require.Len(t, review.Candidacies, 3)
		for _, item := range review.Candidacies {
			require.NotEmpty(t, item.Candidate.Name)
			require.NotEmpty(t, item.AppliedAt)
		}
	})

	t.Run("applicants cannot review", func(t *testing.T) {
		_, err := h.CompanyCandidacies(applicantCaller, "")
		require.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("export produces a workbook", func(t *testing.T) {
		xlsexport.NewHandler()
		buf, err := h.ExportCompanyCandidacies(companyCaller, "")
		require.NoError(t, err)
		require.NotZero(t, buf.Len())
	})
}
