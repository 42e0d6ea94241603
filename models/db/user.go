package dbmodels

import (
	"job-board-backend/models"
)

type User struct {
	BaseModel
	Name     string          `gorm:"type:varchar(255)"`
	Email    string          `gorm:"type:varchar(255);uniqueIndex"`
	Phone    string          `gorm:"type:varchar(50)"`
	Location string          `gorm:"type:varchar(255)"`
	Photo    string          `gorm:"type:varchar(512)"`
	Role     models.UserRole `gorm:"type:varchar(50)"`
}
