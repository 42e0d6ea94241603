package vacancyhandler

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-board-backend/db"
	companystore "job-board-backend/lib/company/store"
	externalvacancystore "job-board-backend/lib/external-vacancy/store"
	xlsexport "job-board-backend/lib/export/xls"
	userstore "job-board-backend/lib/users/store"
	vacancystore "job-board-backend/lib/vacancy/store"
	"job-board-backend/models"
	companyapimodels "job-board-backend/models/api/company"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"

	"github.com/google/uuid"
)

type Provider interface {
	Create(caller models.Caller, data vacancyapimodels.VacancyData) (id string, err error)
	GetByID(id string) (item vacancyapimodels.VacancyView, err error)
	GetByTitle(title string) (item vacancyapimodels.VacancyView, err error)
	Update(caller models.Caller, id string, data vacancyapimodels.VacancyData) error
	Delete(caller models.Caller, id string) error
	List(caller models.Caller, filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, err error)
	Apply(vacancyID, applicantID, coverLetter string) (vacancyapimodels.CandidacyView, error)
	ChangeCandidacyStatus(caller models.Caller, vacancyID, candidacyID string, status models.CandidacyStatus) error
	VacancyCandidacies(caller models.Caller, vacancyID string) (list []vacancyapimodels.CandidacyView, err error)
	CompanyCandidacies(caller models.Caller, companyID string) (vacancyapimodels.ReviewListView, error)
	ExportCompanyCandidacies(caller models.Caller, companyID string) (*bytes.Buffer, error)
	ListApplicantCandidacies(applicantID string) (list []vacancyapimodels.MyApplicationView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         vacancystore.NewInstance(db.DB),
		externalStore: externalvacancystore.NewInstance(db.DB),
		companyStore:  companystore.NewInstance(db.DB),
		userStore:     userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store         vacancystore.Provider
	externalStore externalvacancystore.Provider
	companyStore  companystore.Provider
	userStore     userstore.Provider
}

func (i impl) getLogger(vacancyID, userID string) *log.Entry {
	logger := log.WithField("handler", "vacancy")
	if vacancyID != "" {
		logger = logger.WithField("vacancy_id", vacancyID)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

// resolveCompany maps the caller to the company it may act for. Company users
// always act for their own company, admins may name any.
func (i impl) resolveCompany(caller models.Caller, companyID string) (*dbmodels.Company, error) {
	switch {
	case caller.Role.IsCompany():
		rec, err := i.companyStore.GetByUserID(caller.UserID)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, errors.Wrap(models.ErrNotFound, "company")
		}
		return rec, nil
	case caller.Role.IsAdmin() && companyID != "":
		rec, err := i.companyStore.GetByID(companyID)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, errors.Wrap(models.ErrNotFound, "company")
		}
		return rec, nil
	}
	return nil, models.ErrForbidden
}

func (i impl) Create(caller models.Caller, data vacancyapimodels.VacancyData) (id string, err error) {
	company, err := i.resolveCompany(caller, data.CompanyID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Vacancy{
		Title:            data.Title,
		Description:      data.Description,
		Responsibilities: data.Responsibilities,
		Requirements:     data.Requirements,
		NiceToHaves:      data.NiceToHaves,
		Perks:            data.Perks,
		WorkMode:         data.WorkMode,
		Location:         data.Location,
		ContractType:     data.ContractType,
		Level:            data.Level,
		Salary:           data.Salary,
		Positions:        data.Positions,
		CompanyID:        company.ID,
		ContactEmail:     data.ContactEmail,
		ApplyLink:        data.ApplyLink,
		PublishedAt:      time.Now(),
		Active:           true,
	}
	recID, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.getLogger(recID, caller.UserID).Info("vacancy created")
	return recID, nil
}

func (i impl) GetByID(id string) (vacancyapimodels.VacancyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, errors.Wrap(models.ErrNotFound, "vacancy")
	}
	return vacancyapimodels.ToVacancyView(*rec), nil
}

func (i impl) GetByTitle(title string) (vacancyapimodels.VacancyView, error) {
	if title == "" {
		return vacancyapimodels.VacancyView{}, errors.Wrap(models.ErrValidation, "title is required")
	}
	rec, err := i.store.GetByTitle(title)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, errors.Wrap(models.ErrNotFound, "vacancy")
	}
	return vacancyapimodels.ToVacancyView(*rec), nil
}

// checkOwnership allows only the owning company or an admin past.
func (i impl) checkOwnership(caller models.Caller, rec *dbmodels.Vacancy) error {
	if caller.Role.IsAdmin() {
		return nil
	}
	if !caller.Role.IsCompany() {
		return models.ErrForbidden
	}
	company, err := i.companyStore.GetByUserID(caller.UserID)
	if err != nil {
		return err
	}
	if company == nil || company.ID != rec.CompanyID {
		return models.ErrForbidden
	}
	return nil
}

func (i impl) Update(caller models.Caller, id string, data vacancyapimodels.VacancyData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "vacancy")
	}
	if err = i.checkOwnership(caller, rec); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":             data.Title,
		"description":       data.Description,
		"responsibilities":  data.Responsibilities,
		"requirements":      data.Requirements,
		"nice_to_haves":     data.NiceToHaves,
		"perks":             data.Perks,
		"work_mode":         data.WorkMode,
		"location":          data.Location,
		"contract_type":     data.ContractType,
		"level":             data.Level,
		"salary":            data.Salary,
		"positions":         data.Positions,
		"contact_email":     data.ContactEmail,
		"apply_link":        data.ApplyLink,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(caller models.Caller, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "vacancy")
	}
	if err = i.checkOwnership(caller, rec); err != nil {
		return err
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	i.getLogger(id, caller.UserID).Info("vacancy deleted")
	return nil
}

func (i impl) List(caller models.Caller, filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, error) {
	var companyIDs []string
	if caller.Role.IsCompany() {
		// company callers only ever see their own postings
		company, err := i.companyStore.GetByUserID(caller.UserID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, errors.Wrap(models.ErrNotFound, "company")
		}
		companyIDs = []string{company.ID}
	} else if filter.Company != "" {
		if _, err := uuid.Parse(filter.Company); err == nil {
			companyIDs = []string{filter.Company}
		} else {
			ids, err := i.companyStore.FindIDsByName(filter.Company)
			if err != nil {
				return nil, err
			}
			companyIDs = ids
		}
	}
	list, err := i.store.List(filter, companyIDs)
	if err != nil {
		return nil, err
	}
	result := make([]vacancyapimodels.VacancyView, 0, len(list))
	for _, rec := range list {
		result = append(result, vacancyapimodels.ToVacancyView(rec))
	}
	return result, nil
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
		VacancyID:   &rec.ID,
		ApplicantID: applicantID,
		AppliedAt:   time.Now(),
		CoverLetter: coverLetter,
		Status:      models.CandidacyStatusPending,
	}
	id, err := i.store.AddCandidacy(candidacy)
	if err != nil {
		return vacancyapimodels.CandidacyView{}, err
	}
	candidacy.ID = id
	i.getLogger(vacancyID, applicantID).Info("candidacy created")
	return vacancyapimodels.ToCandidacyView(candidacy), nil
}

func (i impl) ChangeCandidacyStatus(caller models.Caller, vacancyID, candidacyID string, status models.CandidacyStatus) error {
	if !status.IsValid() {
		return errors.Wrapf(models.ErrInvalidTransition, "status %q", status)
	}
	rec, err := i.store.GetByID(vacancyID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "vacancy")
	}
	if err = i.checkOwnership(caller, rec); err != nil {
		return err
	}
	candidacy, err := i.store.GetCandidacy(vacancyID, candidacyID)
	if err != nil {
		return err
	}
	if candidacy == nil {
		return errors.Wrap(models.ErrNotFound, "candidacy")
	}
	err = i.store.UpdateCandidacyStatus(vacancyID, candidacyID, status)
	if err != nil {
		return err
	}
	i.getLogger(vacancyID, caller.UserID).
		WithField("candidacy_id", candidacyID).
		WithField("status", status).
		Info("candidacy status changed")
	return nil
}

func (i impl) VacancyCandidacies(caller models.Caller, vacancyID string) ([]vacancyapimodels.CandidacyView, error) {
	rec, err := i.store.GetByID(vacancyID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "vacancy")
	}
	if err = i.checkOwnership(caller, rec); err != nil {
		return nil, err
	}
	list := make([]vacancyapimodels.CandidacyView, 0, len(rec.Candidacies))
	for _, c := range rec.Candidacies {
		list = append(list, vacancyapimodels.ToCandidacyView(c))
	}
	return list, nil
}

func (i impl) CompanyCandidacies(caller models.Caller, companyID string) (vacancyapimodels.ReviewListView, error) {
	company, err := i.resolveCompany(caller, companyID)
	if err != nil {
		return vacancyapimodels.ReviewListView{}, err
	}
	vacancies, err := i.store.ListByCompany(company.ID)
	if err != nil {
		return vacancyapimodels.ReviewListView{}, err
	}
	result := vacancyapimodels.ReviewListView{
		TotalVacancies: len(vacancies),
		Candidacies:    []vacancyapimodels.ReviewCandidacyView{},
	}
	for _, vacancy := range vacancies {
		for _, candidacy := range vacancy.Candidacies {
			if candidacy.Applicant == nil {
				continue
			}
			result.TotalCandidacies++
			result.Candidacies = append(result.Candidacies, vacancyapimodels.ReviewCandidacyView{
				ID: candidacy.ID,
				Candidate: vacancyapimodels.CandidateSummary{
					Name:     candidacy.Applicant.Name,
					Email:    candidacy.Applicant.Email,
					Phone:    candidacy.Applicant.Phone,
					Location: candidacy.Applicant.Location,
					Photo:    candidacy.Applicant.Photo,
				},
				VacancyID:    vacancy.ID,
				VacancyTitle: vacancy.Title,
				AppliedAt:    candidacy.AppliedAt.Format("2006-01-02"),
				Status:       candidacy.Status,
				CoverLetter:  candidacy.CoverLetter,
			})
		}
	}
	return result, nil
}

func (i impl) ExportCompanyCandidacies(caller models.Caller, companyID string) (*bytes.Buffer, error) {
	review, err := i.CompanyCandidacies(caller, companyID)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportCandidacyList(review.Candidacies)
}

func (i impl) ListApplicantCandidacies(applicantID string) ([]vacancyapimodels.MyApplicationView, error) {
	internal, err := i.store.ListByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	external, err := i.externalStore.ListByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	result := make([]vacancyapimodels.MyApplicationView, 0, len(internal)+len(external))
	for _, item := range internal {
		result = append(result, vacancyapimodels.MyApplicationView{
			VacancyID:    item.Vacancy.ID,
			Title:        item.Vacancy.Title,
			Description:  item.Vacancy.Description,
			WorkMode:     item.Vacancy.WorkMode,
			Location:     item.Vacancy.Location,
			ContractType: item.Vacancy.ContractType,
			Level:        item.Vacancy.Level,
			Salary:       item.Vacancy.Salary,
			PublishedAt:  item.Vacancy.PublishedAt,
			Candidacy:    vacancyapimodels.ToCandidacyView(item.Candidacy),
			Company:      companyapimodels.ToCompanySummary(item.Vacancy.Company),
		})
	}
	for _, item := range external {
		result = append(result, vacancyapimodels.MyApplicationView{
			VacancyID:    item.Vacancy.ID,
			External:     true,
			Title:        item.Vacancy.Title,
			Description:  item.Vacancy.Description,
			WorkMode:     item.Vacancy.WorkMode,
			Location:     item.Vacancy.Location,
			ContractType: item.Vacancy.ContractType,
			Level:        item.Vacancy.Level,
			Salary:       item.Vacancy.Salary,
			PublishedAt:  item.Vacancy.PublishedAt,
			Candidacy:    vacancyapimodels.ToCandidacyView(item.Candidacy),
			Company: companyapimodels.CompanySummary{
				Name: item.Vacancy.CompanyName,
			},
		})
	}
	return result, nil
}
