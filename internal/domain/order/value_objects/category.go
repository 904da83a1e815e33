package valueobjects

import "fmt"

type ServiceCategory string

const (
	CategoryHydraulic  ServiceCategory = "hydraulic"
	CategoryElectrical ServiceCategory = "electrical"
	CategoryBoth       ServiceCategory = "both"
)

var validServiceCategories = map[ServiceCategory]bool{
	CategoryHydraulic:  true,
	CategoryElectrical: true,
	CategoryBoth:       true,
}

func (sc ServiceCategory) String() string {
	return string(sc)
}

func (sc ServiceCategory) IsValid() bool {
	return validServiceCategories[sc]
}

func NewServiceCategory(s string) (ServiceCategory, error) {
	sc := ServiceCategory(s)
	if !sc.IsValid() {
		return "", fmt.Errorf("invalid service category: %s", s)
	}
	return sc, nil
}
