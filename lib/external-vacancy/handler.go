package externalvacancyhandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-board-backend/db"
	externalvacancystore "job-board-backend/lib/external-vacancy/store"
	"job-board-backend/lib/jsearch/client"
	userstore "job-board-backend/lib/users/store"
	"job-board-backend/lib/utils/helpers"
	"job-board-backend/lib/utils/lock"
	"job-board-backend/models"
	externalvacancyapimodels "job-board-backend/models/api/externalvacancy"
	jsearchapimodels "job-board-backend/models/api/jsearch"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	// Import runs one ingestion cycle: fetch, normalize, dedup, insert.
	// Cycles are serialized process-wide, an overlapping call fails with
	// ErrImportRunning and the next scheduled tick retries.
	Import(ctx context.Context, req externalvacancyapimodels.ImportRequest) (externalvacancyapimodels.ImportResult, error)
	List(filter externalvacancyapimodels.ExternalVacancyFilter) (list []externalvacancyapimodels.ExternalVacancyView, err error)
	GetByTitle(title string) (item externalvacancyapimodels.ExternalVacancyView, err error)
	Delete(caller models.Caller, id string) error
	Apply(vacancyID, applicantID, coverLetter string) (vacancyapimodels.CandidacyView, error)
	VacancyCandidacies(caller models.Caller, vacancyID string) (list []vacancyapimodels.CandidacyView, err error)
}

var Instance Provider

func NewHandler(cycleTimeout time.Duration) {
	Instance = impl{
		store:        externalvacancystore.NewInstance(db.DB),
		client:       client.Instance,
		userStore:    userstore.NewInstance(db.DB),
		cycleTimeout: cycleTimeout,
	}
}

type impl struct {
	store        externalvacancystore.Provider
	client       client.Provider
	userStore    userstore.Provider
	cycleTimeout time.Duration
}

const importLockKey = "external-vacancy-import"

func (i impl) getLogger() *log.Entry {
	return log.WithField("handler", "external_vacancy")
}

func (i impl) Import(ctx context.Context, req externalvacancyapimodels.ImportRequest) (externalvacancyapimodels.ImportResult, error) {
	result := externalvacancyapimodels.ImportResult{
		Inserted: []externalvacancyapimodels.ExternalVacancyView{},
	}
	var cycleErr error
	acquired, err := lock.WithDelay(ctx, importLockKey, 0, func() error {
		// the deadline bounds every storage call in the cycle, a hung
		// statement cannot pin the import lock past it
		cycleCtx := ctx
		if i.cycleTimeout > 0 {
			var cancel context.CancelFunc
			cycleCtx, cancel = context.WithTimeout(ctx, i.cycleTimeout)
			defer cancel()
		}
		result, cycleErr = i.runCycle(cycleCtx, req)
		return cycleErr
	})
	if !acquired {
		return result, models.ErrImportRunning
	}
	return result, err
}

func (i impl) runCycle(ctx context.Context, req externalvacancyapimodels.ImportRequest) (externalvacancyapimodels.ImportResult, error) {
	logger := i.getLogger()
	result := externalvacancyapimodels.ImportResult{
		Inserted: []externalvacancyapimodels.ExternalVacancyView{},
	}
	resp, err := i.client.Search(ctx, jsearchapimodels.SearchParams{
		Query:   req.Query,
		Pages:   req.Pages,
		Country: req.Country,
	})
	if err != nil {
		return result, err
	}
	now := time.Now()
	for _, raw := range resp.Data {
		if helpers.IsContextDone(ctx) {
			// records inserted so far stay valid, the next cycle dedups
			return result, nil
		}
		if raw.JobID == "" {
			logger.Warn("provider record without job_id skipped")
			continue
		}
		existing, err := i.store.GetByExternalID(ctx, raw.JobID)
		if err != nil {
			return result, err
		}
		if existing != nil {
			// first write wins, provider-side edits are not folded in
			continue
		}
		rec := Normalize(raw, now)
		created, err := i.store.Create(ctx, &rec)
		if err != nil {
			return result, err
		}
		if !created {
			// lost the race against a concurrent cycle, same as found
			continue
		}
		result.InsertedCount++
		result.Inserted = append(result.Inserted, externalvacancyapimodels.ToExternalVacancyView(rec))
	}
	logger.
		WithField("fetched", len(resp.Data)).
		WithField("inserted", result.InsertedCount).
		Info("import cycle done")
	return result, nil
}

func (i impl) List(filter externalvacancyapimodels.ExternalVacancyFilter) ([]externalvacancyapimodels.ExternalVacancyView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]externalvacancyapimodels.ExternalVacancyView, 0, len(list))
	for _, rec := range list {
		result = append(result, externalvacancyapimodels.ToExternalVacancyView(rec))
	}
	return result, nil
}

func (i impl) GetByTitle(title string) (externalvacancyapimodels.ExternalVacancyView, error) {
	if title == "" {
		return externalvacancyapimodels.ExternalVacancyView{}, errors.Wrap(models.ErrValidation, "title is required")
	}
	rec, err := i.store.GetByTitle(title)
	if err != nil {
		return externalvacancyapimodels.ExternalVacancyView{}, err
	}
	if rec == nil {
		return externalvacancyapimodels.ExternalVacancyView{}, errors.Wrap(models.ErrNotFound, "vacancy")
	}
	return externalvacancyapimodels.ToExternalVacancyView(*rec), nil
}

func (i impl) Delete(caller models.Caller, id string) error {
	if !caller.Role.IsAdmin() {
		return models.ErrForbidden
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "vacancy")
	}
	return i.store.Delete(id)
}

func (i impl) Apply(vacancyID, applicantID, coverLetter string) (vacancyapimodels.CandidacyView, error) {
	applicant, err := i.userStore.GetByID(applicantID)
	if err != nil {
		return vacancyapimodels.CandidacyView{}, err
	}
	if applicant == nil {
		return vacancyapimodels.CandidacyView{}, errors.Wrap(models.ErrNotFound, "applicant")
	}
	rec, err := i.store.GetByID(vacancyID)
	if err != nil {
		return vacancyapimodels.CandidacyView{}, err
	}
	if rec == nil {
		return vacancyapimodels.CandidacyView{}, errors.Wrap(models.ErrNotFound, "vacancy")
	}
	// fast-path check, the unique index settles concurrent duplicates
	for _, c := range rec.Candidacies {
		if c.ApplicantID == applicantID {
			return vacancyapimodels.CandidacyView{}, models.ErrAlreadyApplied
		}
	}
	candidacy := dbmodels.Candidacy{
		ExternalVacancyID: &rec.ID,
		ApplicantID:       applicantID,
		AppliedAt:         time.Now(),
		CoverLetter:       coverLetter,
		Status:            models.CandidacyStatusPending,
	}
	id, err := i.store.AddCandidacy(candidacy)
	if err != nil {
		return vacancyapimodels.CandidacyView{}, err
	}
	candidacy.ID = id
	return vacancyapimodels.ToCandidacyView(candidacy), nil
}

func (i impl) VacancyCandidacies(caller models.Caller, vacancyID string) ([]vacancyapimodels.CandidacyView, error) {
	// ingested postings have no owning company, review is admin-only
	if !caller.Role.IsAdmin() {
		return nil, models.ErrForbidden
	}
	rec, err := i.store.GetByID(vacancyID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "vacancy")
	}
	list := make([]vacancyapimodels.CandidacyView, 0, len(rec.Candidacies))
	for _, c := range rec.Candidacies {
		list = append(list, vacancyapimodels.ToCandidacyView(c))
	}
	return list, nil
}
