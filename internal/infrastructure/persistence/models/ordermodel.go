package models

type ServiceOrderModel struct {
	ID                  uint     `gorm:"primaryKey"`
	ClientName          string   `gorm:"size:200;not null"`
	ContactPhone        string   `gorm:"size:32;not null"`
	ContactEmail        string   `gorm:"size:200"`
	ServiceCategory     string   `gorm:"size:20;not null;index"`
	Address             string   `gorm:"size:500"`
	Latitude            *float64 `gorm:"type:double"`
	Longitude           *float64 `gorm:"type:double"`
	ProblemDescription  string   `gorm:"type:text;not null"`
	WorkNotes           string   `gorm:"type:text"`
	PhotosBefore        string   `gorm:"type:json"`
	PhotosDuring        string   `gorm:"type:json"`
	PhotosAfter         string   `gorm:"type:json"`
	LaborCostCents      int64    `gorm:"not null;default:0"`
	MaterialCostCents   int64    `gorm:"not null;default:0"`
	MaterialNotes       string   `gorm:"type:text"`
	Status              string   `gorm:"size:20;not null;index"`
	AssignedTechnicians string   `gorm:"size:500"`
	CreatedAt           int64    `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt           int64    `gorm:"autoUpdateTime:milli;not null"`
	ExecutedAt          *int64
	ClosedAt            *int64
}

func (ServiceOrderModel) TableName() string {
	return "service_orders"
}
