// Package memory implements the system store entirely in process memory.
// Nothing is persisted; the store lives as long as the process.
package memory

import (
	"sync"

	"github.com/YusovID/racing-league/internal/apperrors"
	"github.com/YusovID/racing-league/internal/domain"
	"github.com/YusovID/racing-league/internal/repository"
)

var _ repository.Store = (*Store)(nil)

type Store struct {
	mu sync.Mutex

	countries []*domain.Country
	teams     []*domain.Team
	circuits  []*domain.Circuit
	races     []*domain.Race
	drivers   []*domain.Driver
	mechanics []*domain.Mechanic
	cars      []*domain.Car
	results   []*domain.RaceResult
}

func New() *Store {
	return &Store{}
}

// WithLock serialises fn against every other WithLock call.
// The accessors below do not lock on their own.
func (s *Store) WithLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn()
}

func (s *Store) Countries() []*domain.Country { return s.countries }

func (s *Store) CountryByID(id int) (*domain.Country, error) {
	for _, c := range s.countries {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, apperrors.NotFound("country with id %d not found", id)
}

func (s *Store) AddCountry(c *domain.Country) {
	s.countries = append(s.countries, c)
}

func (s *Store) Teams() []*domain.Team { return s.teams }

func (s *Store) TeamByName(name string) (*domain.Team, error) {
	for _, t := range s.teams {
		if domain.SameName(t.Name, name) {
			return t, nil
		}
	}

	return nil, apperrors.NotFound("team '%s' not found", name)
}

func (s *Store) AddTeam(t *domain.Team) {
	s.teams = append(s.teams, t)

	if t.Country != nil {
		t.Country.Teams = append(t.Country.Teams, t)
	}
}

func (s *Store) Circuits() []*domain.Circuit { return s.circuits }

func (s *Store) CircuitByName(name string) (*domain.Circuit, error) {
	for _, c := range s.circuits {
		if domain.SameName(c.Name, name) {
			return c, nil
		}
	}

	return nil, apperrors.NotFound("circuit '%s' not found", name)
}

func (s *Store) AddCircuit(c *domain.Circuit) {
	s.circuits = append(s.circuits, c)

	if c.Country != nil {
		c.Country.Circuits = append(c.Country.Circuits, c)
	}
}

func (s *Store) Races() []*domain.Race { return s.races }

func (s *Store) AddRace(r *domain.Race) {
	s.races = append(s.races, r)

	if r.Country != nil {
		r.Country.Races = append(r.Country.Races, r)
	}
}

func (s *Store) Drivers() []*domain.Driver { return s.drivers }

func (s *Store) DriverByDNI(dni string) (*domain.Driver, error) {
	for _, d := range s.drivers {
		if d.DNI == dni {
			return d, nil
		}
	}

	return nil, apperrors.NotFound("driver with dni %s not found", dni)
}

func (s *Store) AddDriver(d *domain.Driver) {
	s.drivers = append(s.drivers, d)

	if d.Country != nil {
		d.Country.People = append(d.Country.People, d)
	}
}

func (s *Store) Mechanics() []*domain.Mechanic { return s.mechanics }

func (s *Store) MechanicByDNI(dni string) (*domain.Mechanic, error) {
	for _, m := range s.mechanics {
		if m.DNI == dni {
			return m, nil
		}
	}

	return nil, apperrors.NotFound("mechanic with dni %s not found", dni)
}

func (s *Store) AddMechanic(m *domain.Mechanic) {
	s.mechanics = append(s.mechanics, m)

	if m.Country != nil {
		m.Country.People = append(m.Country.People, m)
	}
}

func (s *Store) Cars() []*domain.Car { return s.cars }

func (s *Store) AddCar(c *domain.Car) {
	s.cars = append(s.cars, c)
}

func (s *Store) Results() []*domain.RaceResult { return s.results }

func (s *Store) AddResult(r *domain.RaceResult) {
	s.results = append(s.results, r)
}
