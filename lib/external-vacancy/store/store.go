package externalvacancystore

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"job-board-backend/models"
	externalvacancyapimodels "job-board-backend/models/api/externalvacancy"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	// Create inserts the record unless its external id is already present.
	// The unique index on external_id decides, a lost race is reported as
	// created=false and not as an error. The context bounds the statement,
	// an expired deadline surfaces as ErrStorage.
	Create(ctx context.Context, rec *dbmodels.ExternalVacancy) (created bool, err error)
	GetByExternalID(ctx context.Context, externalID string) (rec *dbmodels.ExternalVacancy, err error)
	GetByID(id string) (rec *dbmodels.ExternalVacancy, err error)
	GetByTitle(title string) (rec *dbmodels.ExternalVacancy, err error)
	Delete(id string) error
	List(filter externalvacancyapimodels.ExternalVacancyFilter) (list []dbmodels.ExternalVacancy, err error)
	AddCandidacy(rec dbmodels.Candidacy) (id string, err error)
	ListByApplicant(applicantID string) (list []dbmodels.ExternalVacancyCandidacy, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec *dbmodels.ExternalVacancy) (created bool, err error) {
	err = i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return false, nil
		}
		return false, errors.Wrap(models.ErrStorage, err.Error())
	}
	return true, nil
}

func (i impl) GetByExternalID(ctx context.Context, externalID string) (*dbmodels.ExternalVacancy, error) {
	rec := dbmodels.ExternalVacancy{}
	err := i.db.WithContext(ctx).
		Model(&dbmodels.ExternalVacancy{}).
		Where("external_id = ?", externalID).
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

func (i impl) GetByID(id string) (*dbmodels.ExternalVacancy, error) {
	rec := dbmodels.ExternalVacancy{}
	err := i.db.
		Model(&dbmodels.ExternalVacancy{}).
		Where("id = ?", id).
		Preload("Candidacies").
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

func (i impl) GetByTitle(title string) (*dbmodels.ExternalVacancy, error) {
	rec := dbmodels.ExternalVacancy{}
	err := i.db.
		Model(&dbmodels.ExternalVacancy{}).
		Where("title = ?", title).
		Order("created_at desc").
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

func (i impl) Delete(id string) error {
	rec := dbmodels.ExternalVacancy{
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

func (i impl) List(filter externalvacancyapimodels.ExternalVacancyFilter) (list []dbmodels.ExternalVacancy, err error) {
	list = []dbmodels.ExternalVacancy{}
	tx := i.db.
		Model(dbmodels.ExternalVacancy{})
	i.addFilter(tx, filter)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	return list, nil
}

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

func (i impl) ListByApplicant(applicantID string) (list []dbmodels.ExternalVacancyCandidacy, err error) {
	candidacies := []dbmodels.Candidacy{}
	err = i.db.
		Model(&dbmodels.Candidacy{}).
		Where("applicant_id = ?", applicantID).
		Where("external_vacancy_id is not null").
		Order("applied_at desc").
		Find(&candidacies).
		Error
	if err != nil {
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	if len(candidacies) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(candidacies))
	for _, c := range candidacies {
		ids = append(ids, *c.ExternalVacancyID)
	}
	vacancies := []dbmodels.ExternalVacancy{}
	err = i.db.
		Model(&dbmodels.ExternalVacancy{}).
		Where("id in (?)", ids).
		Find(&vacancies).
		Error
	if err != nil {
		return nil, errors.Wrap(models.ErrStorage, err.Error())
	}
	vacancyByID := make(map[string]dbmodels.ExternalVacancy, len(vacancies))
	for _, v := range vacancies {
		vacancyByID[v.ID] = v
	}
	list = make([]dbmodels.ExternalVacancyCandidacy, 0, len(candidacies))
	for _, c := range candidacies {
		vacancy, ok := vacancyByID[*c.ExternalVacancyID]
		if !ok {
			continue
		}
		list = append(list, dbmodels.ExternalVacancyCandidacy{
			Vacancy:   vacancy,
			Candidacy: c,
		})
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter externalvacancyapimodels.ExternalVacancyFilter) {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where(
			i.db.Where("LOWER(title) like ?", pattern).
				Or("LOWER(description) like ?", pattern).
				Or("LOWER(responsibilities::text) like ?", pattern).
				Or("LOWER(requirements::text) like ?", pattern).
				Or("LOWER(perks::text) like ?", pattern).
				Or("LOWER(company_name) like ?", pattern),
		)
	}
	if filter.WorkMode != "" {
		tx.Where("work_mode = ?", filter.WorkMode)
	}
	if filter.ContractType != "" {
		tx.Where("contract_type = ?", filter.ContractType)
	}
	if filter.Level != "" {
		tx.Where("level = ?", filter.Level)
	}
	if filter.Location != "" {
		tx.Where("LOWER(location) like ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Company != "" {
		tx.Where("LOWER(company_name) like ?", "%"+strings.ToLower(filter.Company)+"%")
	}
	if filter.Sort.OldestFirst {
		tx.Order("created_at asc")
	} else {
		tx.Order("created_at desc")
	}
}
