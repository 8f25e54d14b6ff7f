package domain

import "strings"

const (
	SpecialtyEngine       Specialty = "ENGINE"
	SpecialtyTires        Specialty = "TIRES"
	SpecialtyAerodynamics Specialty = "AERODYNAMICS"
	SpecialtyElectronics  Specialty = "ELECTRONICS"
)

// Specialty is the technical area a mechanic works on.
type Specialty string

func Specialties() []Specialty {
	return []Specialty{
		SpecialtyEngine,
		SpecialtyTires,
		SpecialtyAerodynamics,
		SpecialtyElectronics,
	}
}

func (s Specialty) Valid() bool {
	for _, known := range Specialties() {
		if s == known {
			return true
		}
	}

	return false
}

// ParseSpecialty accepts any casing and surrounding whitespace.
func ParseSpecialty(raw string) (Specialty, bool) {
	s := Specialty(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", false
	}

	return s, true
}
