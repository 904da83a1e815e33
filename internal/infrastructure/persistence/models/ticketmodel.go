package models

type TicketModel struct {
	ID            string   `gorm:"primaryKey;size:32"`
	ClientName    string   `gorm:"size:200;not null"`
	ContactPhone  string   `gorm:"size:32;not null;index"`
	Location      string   `gorm:"size:500"`
	Latitude      *float64 `gorm:"type:double"`
	Longitude     *float64 `gorm:"type:double"`
	Description   string   `gorm:"type:text;not null"`
	PhotoURLs     string   `gorm:"type:json"`
	Status        string   `gorm:"size:20;not null;index"`
	LinkedOrderID uint     `gorm:"not null;default:0;index"`
	CreatedAt     int64    `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64    `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "client_tickets"
}
