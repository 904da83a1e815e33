package models

type ExpenseModel struct {
	ID          string `gorm:"primaryKey;size:32"`
	Category    string `gorm:"size:20;not null;index"`
	Description string `gorm:"size:500;not null"`
	AmountCents int64  `gorm:"not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ExpenseModel) TableName() string {
	return "expenses"
}
