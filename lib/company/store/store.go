package companystore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.Company, err error)
	GetByUserID(userID string) (rec *dbmodels.Company, err error)
	FindIDsByName(nameSubstring string) (ids []string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.Company, error) {
	rec := dbmodels.Company{}
	err := i.db.
		Model(&dbmodels.Company{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// GetByUserID resolves the company owned by a user with the company role.
func (i impl) GetByUserID(userID string) (*dbmodels.Company, error) {
	rec := dbmodels.Company{}
	err := i.db.
		Model(&dbmodels.Company{}).
		Where("user_id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindIDsByName(nameSubstring string) ([]string, error) {
	ids := []string{}
	err := i.db.
		Model(&dbmodels.Company{}).
		Where("LOWER(name) like ?", "%"+strings.ToLower(nameSubstring)+"%").
		Pluck("id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
