package domain

import (
	"strings"

	"github.com/google/uuid"
)

type Country struct {
	ID   int
	Name string

	// Reporting aggregates, not ownership.
	People   []Individual
	Teams    []*Team
	Circuits []*Circuit
	Races    []*Race
}

// Person is the identity shared by drivers and mechanics.
type Person struct {
	DNI       string
	FirstName string
	LastName  string
	Country   *Country
}

func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Person) Identity() *Person { return p }

// Individual is implemented by every entity that embeds Person.
type Individual interface {
	Identity() *Person
	FullName() string
}

type Circuit struct {
	Name    string
	Length  int
	Country *Country
}

type Team struct {
	Name      string
	Country   *Country
	Cars      []*Car
	Mechanics []*Mechanic
	Contracts []*Contract
}

// HasMechanic reports whether m is already employed by the team.
func (t *Team) HasMechanic(m *Mechanic) bool {
	for _, employed := range t.Mechanics {
		if employed == m {
			return true
		}
	}

	return false
}

type Car struct {
	Model          string
	Engine         string
	Team           *Team
	Participations []*Participation
}

type Driver struct {
	Person

	Number      int
	Wins        int
	Poles       int
	FastestLaps int
	Podiums     int

	Participations []*Participation
	Contracts      []*Contract
}

// ActiveContract returns the open-ended contract of the driver, or nil.
func (d *Driver) ActiveContract() *Contract {
	for _, c := range d.Contracts {
		if c.Active() {
			return c
		}
	}

	return nil
}

// RacedIn reports whether the driver has a participation in race.
func (d *Driver) RacedIn(race *Race) bool {
	for _, p := range d.Participations {
		if p.Race == race {
			return true
		}
	}

	return false
}

type Mechanic struct {
	Person

	Specialty       Specialty
	YearsExperience int
	Teams           []*Team
}

type Race struct {
	Date           string
	Laps           int
	Time           string
	Country        *Country
	Circuit        *Circuit
	Participations []*Participation
}

// Participation pairs a driver and a car within one race.
type Participation struct {
	ID         uuid.UUID
	AssignedOn string
	Driver     *Driver
	Car        *Car
	Race       *Race
}

// Contract binds a driver to a team. An empty End means the contract is active.
type Contract struct {
	ID     uuid.UUID
	Start  string
	End    string
	Driver *Driver
	Team   *Team
}

func (c *Contract) Active() bool {
	return strings.TrimSpace(c.End) == ""
}

type RaceResult struct {
	ID         uuid.UUID
	Driver     *Driver
	Position   int
	Race       *Race
	FastestLap bool
}
