package dbmodels

type Company struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);index"`
	Description string
	Location    string  `gorm:"type:varchar(255)"`
	Logo        string  `gorm:"type:varchar(512)"`
	UserID      *string `gorm:"type:varchar(36);index"`
	User        *User
}
