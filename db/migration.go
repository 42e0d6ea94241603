package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "job-board-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := DB.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "failed to migrate Company")
	}
	if err := DB.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "failed to migrate Vacancy")
	}
	if err := DB.AutoMigrate(&dbmodels.ExternalVacancy{}); err != nil {
		return errors.Wrap(err, "failed to migrate ExternalVacancy")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidacy{}); err != nil {
		return errors.Wrap(err, "failed to migrate Candidacy")
	}
	log.Info("migrations completed")
	return nil
}
