package expense

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryFood      Category = "food"
	CategoryFuel      Category = "fuel"
	CategoryMaterials Category = "materials"
	CategoryAds       Category = "ads"
	CategoryOther     Category = "other"
)

var validCategories = map[Category]bool{
	CategoryFood:      true,
	CategoryFuel:      true,
	CategoryMaterials: true,
	CategoryAds:       true,
	CategoryOther:     true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid expense category: %s", s)
	}
	return c, nil
}

// Expense is an operating cost entry used for profit and loss aggregation.
// Expenses have no lifecycle.
type Expense struct {
	id          string
	category    Category
	description string
	amountCents int64
	createdAt   time.Time
}

func NewExpense(id string, category Category, description string, amountCents int64) (*Expense, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("expense ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid expense category")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	return &Expense{
		id:          id,
		category:    category,
		description: description,
		amountCents: amountCents,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructExpense(id string, category Category, description string, amountCents int64, createdAt time.Time) (*Expense, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("expense ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid expense category")
	}

	return &Expense{
		id:          id,
		category:    category,
		description: description,
		amountCents: amountCents,
		createdAt:   createdAt,
	}, nil
}

func (e *Expense) ID() string {
	return e.id
}

func (e *Expense) Category() Category {
	return e.category
}

func (e *Expense) Description() string {
	return e.description
}

func (e *Expense) AmountCents() int64 {
	return e.amountCents
}

func (e *Expense) CreatedAt() time.Time {
	return e.createdAt
}
