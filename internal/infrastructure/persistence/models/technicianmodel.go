package models

type TechnicianModel struct {
	ID           string `gorm:"primaryKey;size:32"`
	Name         string `gorm:"size:200;not null;index"`
	Phone        string `gorm:"size:32"`
	Email        string `gorm:"size:200"`
	Specialty    string `gorm:"size:20;not null"`
	Status       string `gorm:"size:20;not null;index"`
	Username     string `gorm:"size:100;index"`
	PasswordHash string `gorm:"size:255"`
	DocumentURLs string `gorm:"type:json"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TechnicianModel) TableName() string {
	return "technicians"
}
