package dbmodels

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"job-board-backend/models"
)

// Candidacies live and die with their vacancy, they are never deleted on
// their own.
func (v *Vacancy) AfterDelete(tx *gorm.DB) (err error) {
	if v.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("vacancy_id = ?", v.ID).Delete(&Candidacy{})
	return
}

type Vacancy struct {
	BaseModel
	Title            string   `gorm:"type:varchar(255)"`
	Description      string
	Responsibilities []string `gorm:"serializer:json;type:jsonb"`
	Requirements     []string `gorm:"serializer:json;type:jsonb"`
	NiceToHaves      []string `gorm:"serializer:json;type:jsonb"`
	Perks            []string `gorm:"serializer:json;type:jsonb"`
	WorkMode         models.WorkMode     `gorm:"type:varchar(50)"`
	Location         string              `gorm:"type:varchar(255)"`
	ContractType     models.ContractType `gorm:"type:varchar(50)"`
	Level            models.JobLevel     `gorm:"type:varchar(50)"`
	Salary           string              `gorm:"type:varchar(255)"`
	Positions        int
	CompanyID        string   `gorm:"type:varchar(36);index:idx_vacancy_company"`
	Company          *Company
	ContactEmail     string `gorm:"type:varchar(255)"`
	ApplyLink        string `gorm:"type:varchar(512)"`
	PublishedAt      time.Time
	Active           bool `gorm:"default:true"`
	Candidacies      []Candidacy `gorm:"foreignKey:VacancyID"`
}
