package valueobjects

import "fmt"

type Specialty string

const (
	SpecialtyHydraulic  Specialty = "hydraulic"
	SpecialtyElectrical Specialty = "electrical"
	SpecialtyBoth       Specialty = "both"
)

var validSpecialties = map[Specialty]bool{
	SpecialtyHydraulic:  true,
	SpecialtyElectrical: true,
	SpecialtyBoth:       true,
}

func (s Specialty) String() string {
	return string(s)
}

func (s Specialty) IsValid() bool {
	return validSpecialties[s]
}

func NewSpecialty(s string) (Specialty, error) {
	sp := Specialty(s)
	if !sp.IsValid() {
		return "", fmt.Errorf("invalid specialty: %s", s)
	}
	return sp, nil
}
