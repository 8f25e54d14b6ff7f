// Package repository defines the interfaces for the league's system store.
// The store is the single source of truth for existence and lookup during validation.
package repository

import "github.com/YusovID/racing-league/internal/domain"

// CountryRepository holds registered countries.
type CountryRepository interface {
	// Countries returns every country in registration order.
	Countries() []*domain.Country

	// CountryByID returns apperrors.ErrNotFound if no country has the id.
	CountryByID(id int) (*domain.Country, error)

	AddCountry(c *domain.Country)
}

// TeamRepository holds registered teams.
type TeamRepository interface {
	Teams() []*domain.Team

	// TeamByName matches case-insensitively and returns apperrors.ErrNotFound on a miss.
	TeamByName(name string) (*domain.Team, error)

	// AddTeam also lists the team under its country.
	AddTeam(t *domain.Team)
}

// CircuitRepository holds registered circuits.
type CircuitRepository interface {
	Circuits() []*domain.Circuit

	// CircuitByName matches case-insensitively and returns apperrors.ErrNotFound on a miss.
	CircuitByName(name string) (*domain.Circuit, error)

	// AddCircuit also lists the circuit under its country.
	AddCircuit(c *domain.Circuit)
}

// RaceRepository holds registered races.
type RaceRepository interface {
	Races() []*domain.Race

	// AddRace also lists the race under its country.
	AddRace(r *domain.Race)
}

// DriverRepository holds registered drivers.
type DriverRepository interface {
	Drivers() []*domain.Driver

	// DriverByDNI returns apperrors.ErrNotFound on a miss.
	DriverByDNI(dni string) (*domain.Driver, error)

	// AddDriver also lists the driver among its country's people.
	AddDriver(d *domain.Driver)
}

// MechanicRepository holds registered mechanics.
type MechanicRepository interface {
	Mechanics() []*domain.Mechanic

	// MechanicByDNI returns apperrors.ErrNotFound on a miss.
	MechanicByDNI(dni string) (*domain.Mechanic, error)

	// AddMechanic also lists the mechanic among its country's people.
	AddMechanic(m *domain.Mechanic)
}

// CarRepository holds registered cars. Cars have no natural key.
type CarRepository interface {
	Cars() []*domain.Car
	AddCar(c *domain.Car)
}

// ResultRepository holds recorded race results.
type ResultRepository interface {
	Results() []*domain.RaceResult
	AddResult(r *domain.RaceResult)
}

// Store is the whole system store.
type Store interface {
	CountryRepository
	TeamRepository
	CircuitRepository
	RaceRepository
	DriverRepository
	MechanicRepository
	CarRepository
	ResultRepository

	// WithLock runs fn while holding the store-wide lock.
	// Checks and mutations that must see a consistent store run inside one call.
	WithLock(fn func() error) error
}
