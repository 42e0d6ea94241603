package vacancystore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"job-board-backend/models"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vacancy, err error)
	GetByTitle(title string) (rec *dbmodels.Vacancy, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter vacancyapimodels.VacancyFilter, companyIDs []string) (list []dbmodels.Vacancy, err error)
	AddCandidacy(rec dbmodels.Candidacy) (id string, err error)
	GetCandidacy(vacancyID, candidacyID string) (rec *dbmodels.Candidacy, err error)
	UpdateCandidacyStatus(vacancyID, candidacyID string, status models.CandidacyStatus) error
	ListByApplicant(applicantID string) (list []dbmodels.VacancyCandidacy, err error)
	ListByCompany(companyID string) (list []dbmodels.Vacancy, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(models.ErrStorage, err.Error())
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	return &rec, nil
}

func (i impl) GetByTitle(title string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("title = ?", title).
		Order("created_at desc").
		Preload("Company").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return errors.Wrap(models.ErrStorage, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Vacancy{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return errors.Wrap(models.ErrStorage, err.Error())
	}
	return nil
}

func (i impl) List(filter vacancyapimodels.VacancyFilter, companyIDs []string) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	tx := i.db.
		Model(dbmodels.Vacancy{}).
		Joins("left join companies as c on vacancies.company_id = c.id")
	i.addFilter(tx, filter, companyIDs)
	err = tx.Preload("Company").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	return list, nil
}

// AddCandidacy relies on the (vacancy_id, applicant_id) unique index, a
// concurrent duplicate insert fails with 23505 instead of storing twice.
func (i impl) AddCandidacy(rec dbmodels.Candidacy) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", models.ErrAlreadyApplied
		}
		return "", errors.Wrap(models.ErrStorage, err.Error())
	}
	return rec.ID, nil
}

func (i impl) GetCandidacy(vacancyID, candidacyID string) (*dbmodels.Candidacy, error) {
	rec := dbmodels.Candidacy{}
	err := i.db.
		Model(&dbmodels.Candidacy{}).
		Where("id = ?", candidacyID).
		Where("vacancy_id = ?", vacancyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	return &rec, nil
}

func (i impl) UpdateCandidacyStatus(vacancyID, candidacyID string, status models.CandidacyStatus) error {
	tx := i.db.
		Model(&dbmodels.Candidacy{}).
		Where("id = ?", candidacyID).
		Where("vacancy_id = ?", vacancyID).
		Update("status", status)
	if tx.Error != nil {
		return errors.Wrap(models.ErrStorage, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) ListByApplicant(applicantID string) (list []dbmodels.VacancyCandidacy, err error) {
	candidacies := []dbmodels.Candidacy{}
	err = i.db.
		Model(&dbmodels.Candidacy{}).
		Where("applicant_id = ?", applicantID).
		Where("vacancy_id is not null").
		Order("applied_at desc").
		Find(&candidacies).
		Error
	if err != nil {
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	if len(candidacies) == 0 {
		return nil, nil
	}
	vacancyIDs := make([]string, 0, len(candidacies))
	for _, c := range candidacies {
		vacancyIDs = append(vacancyIDs, *c.VacancyID)
	}
	vacancies := []dbmodels.Vacancy{}
	err = i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id in (?)", vacancyIDs).
		Preload("Company").
		Find(&vacancies).
		Error
	if err != nil {
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	vacancyByID := make(map[string]dbmodels.Vacancy, len(vacancies))
	for _, v := range vacancies {
		vacancyByID[v.ID] = v
	}
	list = make([]dbmodels.VacancyCandidacy, 0, len(candidacies))
	for _, c := range candidacies {
		vacancy, ok := vacancyByID[*c.VacancyID]
		if !ok {
			continue
		}
		list = append(list, dbmodels.VacancyCandidacy{
			Vacancy:   vacancy,
			Candidacy: c,
		})
	}
	return list, nil
}

func (i impl) ListByCompany(companyID string) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	err = i.db.
		Model(&dbmodels.Vacancy{}).
		Where("company_id = ?", companyID).
		Preload("Company").
		Preload("Candidacies").
		Preload("Candidacies.Applicant").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	return list, nil
}

func (i impl) addSort(tx *gorm.DB, sort vacancyapimodels.VacancySort) {
	if sort.OldestFirst {
		tx.Order("vacancies.created_at asc")
	} else {
		tx.Order("vacancies.created_at desc")
	}
}

func (i impl) addFilter(tx *gorm.DB, filter vacancyapimodels.VacancyFilter, companyIDs []string) {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where(
			i.db.Where("LOWER(vacancies.title) like ?", pattern).
				Or("LOWER(vacancies.description) like ?", pattern).
				Or("LOWER(vacancies.responsibilities::text) like ?", pattern).
				Or("LOWER(vacancies.requirements::text) like ?", pattern).
				Or("LOWER(vacancies.perks::text) like ?", pattern).
				Or("LOWER(c.name) like ?", pattern),
		)
	}
	if filter.WorkMode != "" {
		tx.Where("vacancies.work_mode = ?", filter.WorkMode)
	}
	if filter.ContractType != "" {
		tx.Where("vacancies.contract_type = ?", filter.ContractType)
	}
	if filter.Level != "" {
		tx.Where("vacancies.level = ?", filter.Level)
	}
	if filter.Location != "" {
		tx.Where("LOWER(vacancies.location) like ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if companyIDs != nil {
		tx.Where("vacancies.company_id in (?)", companyIDs)
	}
	i.addSort(tx, filter.Sort)
}
