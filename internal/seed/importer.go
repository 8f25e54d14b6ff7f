package seed

import (
	"fmt"
	"log/slog"

	"github.com/YusovID/racing-league/internal/apperrors"
	"github.com/YusovID/racing-league/internal/domain"
	"github.com/YusovID/racing-league/internal/repository"
	"github.com/YusovID/racing-league/internal/service"
	"github.com/YusovID/racing-league/internal/validation"
)

// Importer applies a seed document through the league services, so a seed is
// held to the same rules as any later change.
type Importer struct {
	store        repository.Store
	registration service.RegistrationService
	association  service.AssociationService
	log          *slog.Logger
}

func NewImporter(
	store repository.Store,
	registration service.RegistrationService,
	association service.AssociationService,
	log *slog.Logger,
) *Importer {
	return &Importer{
		store:        store,
		registration: registration,
		association:  association,
		log:          log,
	}
}

// Summary counts what an import created.
type Summary struct {
	Countries      int
	Circuits       int
	Teams          int
	Cars           int
	Drivers        int
	Mechanics      int
	Races          int
	Contracts      int
	Participations int
	Results        int
	Poles          int
}

// Import applies f section by section in dependency order and stops at the
// first failing entry. Entries applied before the failure stay in the store.
// Import reads the store between service calls, so it must not run alongside
// other writers.
func (im *Importer) Import(f *File) (Summary, error) {
	const op = "internal.seed.Import"

	var sum Summary

	cars := make(map[string]*domain.Car, len(f.Cars))

	steps := []struct {
		section string
		count   int
		apply   func(i int) error
		created *int
	}{
		{"countries", len(f.Countries), func(i int) error { return im.country(f.Countries[i]) }, &sum.Countries},
		{"circuits", len(f.Circuits), func(i int) error { return im.circuit(f.Circuits[i]) }, &sum.Circuits},
		{"teams", len(f.Teams), func(i int) error { return im.team(f.Teams[i]) }, &sum.Teams},
		{"cars", len(f.Cars), func(i int) error { return im.car(f.Cars[i], cars) }, &sum.Cars},
		{"drivers", len(f.Drivers), func(i int) error { return im.driver(f.Drivers[i]) }, &sum.Drivers},
		{"mechanics", len(f.Mechanics), func(i int) error { return im.mechanic(f.Mechanics[i]) }, &sum.Mechanics},
		{"races", len(f.Races), func(i int) error { return im.race(f.Races[i]) }, &sum.Races},
		{"contracts", len(f.Contracts), func(i int) error { return im.contract(f.Contracts[i]) }, &sum.Contracts},
		{"participations", len(f.Participations), func(i int) error {
			return im.participation(f.Participations[i], cars)
		}, &sum.Participations},
		{"results", len(f.Results), func(i int) error { return im.result(f.Results[i]) }, &sum.Results},
		{"poles", len(f.Poles), func(i int) error { return im.pole(f.Poles[i]) }, &sum.Poles},
	}

	for _, step := range steps {
		for i := range step.count {
			if err := step.apply(i); err != nil {
				return sum, fmt.Errorf("seed: %s[%d]: %w", step.section, i, err)
			}

			*step.created++
		}
	}

	im.log.Info("seed imported",
		slog.String("op", op),
		slog.Int("countries", sum.Countries),
		slog.Int("teams", sum.Teams),
		slog.Int("drivers", sum.Drivers),
		slog.Int("races", sum.Races),
		slog.Int("results", sum.Results),
	)

	return sum, nil
}

func (im *Importer) country(c Country) error {
	_, err := im.registration.RegisterCountry(c.ID, c.Name)
	return err
}

func (im *Importer) circuit(c Circuit) error {
	country, err := im.store.CountryByID(c.Country)
	if err != nil {
		return err
	}

	_, err = im.registration.RegisterCircuit(c.Name, c.Length, country)

	return err
}

func (im *Importer) team(t Team) error {
	country, err := im.store.CountryByID(t.Country)
	if err != nil {
		return err
	}

	_, err = im.registration.RegisterTeam(t.Name, country)

	return err
}

func (im *Importer) car(c Car, cars map[string]*domain.Car) error {
	key := validation.Clean(c.Key)
	if key == "" {
		return apperrors.Required("car key is required")
	}

	if _, ok := cars[key]; ok {
		return apperrors.Duplicate("car key '%s' is used twice", key)
	}

	var owner *domain.Team

	if validation.Clean(c.Team) != "" {
		t, err := im.store.TeamByName(c.Team)
		if err != nil {
			return err
		}

		owner = t
	}

	car, err := im.registration.RegisterCar(c.Model, c.Engine)
	if err != nil {
		return err
	}

	cars[key] = car

	if owner == nil {
		return nil
	}

	return im.association.AssignCarToTeam(car, owner)
}

func (im *Importer) driver(d Driver) error {
	country, err := im.store.CountryByID(d.Country)
	if err != nil {
		return err
	}

	_, err = im.registration.RegisterDriver(service.DriverInput{
		DNI:         d.DNI,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Country:     country,
		Number:      d.Number,
		Wins:        d.Wins,
		Poles:       d.Poles,
		FastestLaps: d.FastestLaps,
		Podiums:     d.Podiums,
	})

	return err
}

func (im *Importer) mechanic(m Mechanic) error {
	country, err := im.store.CountryByID(m.Country)
	if err != nil {
		return err
	}

	teams := make([]*domain.Team, 0, len(m.Teams))
	for _, name := range m.Teams {
		t, err := im.store.TeamByName(name)
		if err != nil {
			return err
		}

		teams = append(teams, t)
	}

	specialty, ok := domain.ParseSpecialty(m.Specialty)
	if !ok {
		// Let the registration report the bad value.
		specialty = domain.Specialty(m.Specialty)
	}

	mechanic, err := im.registration.RegisterMechanic(service.MechanicInput{
		DNI:             m.DNI,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Country:         country,
		Specialty:       specialty,
		YearsExperience: m.YearsExperience,
	})
	if err != nil {
		return err
	}

	for _, t := range teams {
		if err := im.association.AssignMechanicToTeam(mechanic, t); err != nil {
			return err
		}
	}

	return nil
}

func (im *Importer) race(r Race) error {
	circuit, err := im.store.CircuitByName(r.Circuit)
	if err != nil {
		return err
	}

	_, err = im.registration.RegisterRace(r.Date, r.Laps, r.Time, circuit)

	return err
}

func (im *Importer) contract(c Contract) error {
	driver, err := im.store.DriverByDNI(validation.Clean(c.Driver))
	if err != nil {
		return err
	}

	team, err := im.store.TeamByName(c.Team)
	if err != nil {
		return err
	}

	if _, err := im.association.AssignDriverToTeam(driver, team, c.Start); err != nil {
		return err
	}

	if validation.Clean(c.End) == "" {
		return nil
	}

	_, err = im.association.TerminateContract(driver, team, c.End)

	return err
}

func (im *Importer) participation(p Participation, cars map[string]*domain.Car) error {
	race, err := im.findRace(p.Race)
	if err != nil {
		return err
	}

	driver, err := im.store.DriverByDNI(validation.Clean(p.Driver))
	if err != nil {
		return err
	}

	car, ok := cars[validation.Clean(p.Car)]
	if !ok {
		return apperrors.NotFound("car key '%s' is not defined in the seed", p.Car)
	}

	_, err = im.association.AssignDriverCarToRace(race, driver, car, p.AssignedOn)

	return err
}

func (im *Importer) result(r Result) error {
	race, err := im.findRace(r.Race)
	if err != nil {
		return err
	}

	driver, err := im.store.DriverByDNI(validation.Clean(r.Driver))
	if err != nil {
		return err
	}

	_, err = im.association.RecordResult(race, driver, r.Position, r.FastestLap)

	return err
}

func (im *Importer) pole(dni string) error {
	driver, err := im.store.DriverByDNI(validation.Clean(dni))
	if err != nil {
		return err
	}

	return im.association.GrantPolePosition(driver)
}

// findRace resolves ref on the circuit name and the calendar date, so
// "5-3-2024" and "05-03-2024" name the same race.
func (im *Importer) findRace(ref RaceRef) (*domain.Race, error) {
	circuit, err := im.store.CircuitByName(ref.Circuit)
	if err != nil {
		return nil, err
	}

	day, err := validation.NormalizeDate(ref.Date)
	if err != nil {
		return nil, err
	}

	for _, r := range im.store.Races() {
		if r.Circuit != circuit {
			continue
		}

		if other, err := validation.NormalizeDate(r.Date); err == nil && other == day {
			return r, nil
		}
	}

	return nil, apperrors.NotFound("no race at %s on %s", circuit.Name, ref.Date)
}
