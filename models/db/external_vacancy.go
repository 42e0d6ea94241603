package dbmodels

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"job-board-backend/models"
)

func (v *ExternalVacancy) AfterDelete(tx *gorm.DB) (err error) {
	if v.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("external_vacancy_id = ?", v.ID).Delete(&Candidacy{})
	return
}

// ExternalVacancy is a posting ingested from the search provider. ExternalID
// is the provider's identifier and the sole deduplication key across
// ingestion runs. The provider exposes no stable company identity, so
// CompanyName is free text with no Company relation.
type ExternalVacancy struct {
	BaseModel
	ExternalID       string `gorm:"type:varchar(255);uniqueIndex"`
	Title            string `gorm:"type:varchar(255)"`
	Description      string
	Responsibilities []string `gorm:"serializer:json;type:jsonb"`
	Requirements     []string `gorm:"serializer:json;type:jsonb"`
	Perks            []string `gorm:"serializer:json;type:jsonb"`
	WorkMode         models.WorkMode     `gorm:"type:varchar(50)"`
	Location         string              `gorm:"type:varchar(255)"`
	ContractType     models.ContractType `gorm:"type:varchar(50)"`
	Level            models.JobLevel     `gorm:"type:varchar(50)"`
	Salary           string              `gorm:"type:varchar(255)"`
	Positions        int
	CompanyName      string `gorm:"type:varchar(255);index"`
	CompanyURL       string `gorm:"type:varchar(512)"`
	ContactEmail     string `gorm:"type:varchar(255)"`
	ApplyLink        string `gorm:"type:varchar(512)"`
	PublishedAt      time.Time
	Active           bool `gorm:"default:true"`
	Candidacies      []Candidacy `gorm:"foreignKey:ExternalVacancyID"`
}
