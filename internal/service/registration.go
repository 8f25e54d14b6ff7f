package service

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/YusovID/racing-league/internal/apperrors"
	"github.com/YusovID/racing-league/internal/domain"
	"github.com/YusovID/racing-league/internal/metrics"
	"github.com/YusovID/racing-league/internal/repository"
	"github.com/YusovID/racing-league/internal/validation"
)

type RegistrationService interface {
	RegisterCountry(id int, name string) (*domain.Country, error)
	RegisterTeam(name string, country *domain.Country) (*domain.Team, error)
	RegisterCircuit(name string, length int, country *domain.Country) (*domain.Circuit, error)
	RegisterRace(date string, laps int, timeOfDay string, circuit *domain.Circuit) (*domain.Race, error)
	RegisterDriver(in DriverInput) (*domain.Driver, error)
	RegisterMechanic(in MechanicInput) (*domain.Mechanic, error)
	RegisterCar(model, engine string) (*domain.Car, error)
}

// DriverInput carries a new driver's data, including the lifetime counters
// it starts with.
type DriverInput struct {
	DNI         string
	FirstName   string
	LastName    string
	Country     *domain.Country
	Number      int
	Wins        int
	Poles       int
	FastestLaps int
	Podiums     int
}

type MechanicInput struct {
	DNI             string
	FirstName       string
	LastName        string
	Country         *domain.Country
	Specialty       domain.Specialty
	YearsExperience int
}

type RegistrationServiceImpl struct {
	BaseService
}

func NewRegistrationService(store repository.Store, log *slog.Logger, rec *metrics.Recorder) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{BaseService: NewBaseService(store, log, rec)}
}

func (s *RegistrationServiceImpl) RegisterCountry(id int, name string) (*domain.Country, error) {
	const op = "internal.service.registration.RegisterCountry"

	req := countryRequest{ID: id, Name: validation.Clean(name)}

	var country *domain.Country

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		for _, c := range s.store.Countries() {
			if c.ID == req.ID {
				return apperrors.Duplicate("a country with id %d already exists", req.ID)
			}

			if domain.SameName(c.Name, req.Name) {
				return apperrors.Duplicate("a country named '%s' already exists", req.Name)
			}
		}

		country = &domain.Country{ID: req.ID, Name: req.Name}
		s.store.AddCountry(country)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("country registered", slog.String("op", op), slog.Int("id", id), slog.String("name", req.Name))

	return country, nil
}

func (s *RegistrationServiceImpl) RegisterTeam(name string, country *domain.Country) (*domain.Team, error) {
	const op = "internal.service.registration.RegisterTeam"

	req := teamRequest{Name: validation.Clean(name), Country: country}

	var team *domain.Team

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		if err := s.ensureCountry(req.Country); err != nil {
			return err
		}

		for _, t := range s.store.Teams() {
			if domain.SameName(t.Name, req.Name) {
				return apperrors.Duplicate("a team named '%s' already exists", req.Name)
			}
		}

		team = &domain.Team{Name: req.Name, Country: req.Country}
		s.store.AddTeam(team)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("team registered", slog.String("op", op), slog.String("team", team.Name))

	return team, nil
}

func (s *RegistrationServiceImpl) RegisterCircuit(name string, length int, country *domain.Country) (*domain.Circuit, error) {
	const op = "internal.service.registration.RegisterCircuit"

	req := circuitRequest{Name: validation.Clean(name), Length: length, Country: country}

	var circuit *domain.Circuit

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		if err := s.ensureCountry(req.Country); err != nil {
			return err
		}

		for _, c := range s.store.Circuits() {
			if domain.SameName(c.Name, req.Name) {
				return apperrors.Duplicate("a circuit named '%s' already exists", req.Name)
			}
		}

		circuit = &domain.Circuit{Name: req.Name, Length: req.Length, Country: req.Country}
		s.store.AddCircuit(circuit)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("circuit registered", slog.String("op", op), slog.String("circuit", circuit.Name))

	return circuit, nil
}

// RegisterRace schedules a race at circuit. The race's country is the circuit's.
func (s *RegistrationServiceImpl) RegisterRace(date string, laps int, timeOfDay string, circuit *domain.Circuit) (*domain.Race, error) {
	const op = "internal.service.registration.RegisterRace"

	req := raceRequest{
		Date:    validation.Clean(date),
		Laps:    laps,
		Time:    validation.Clean(timeOfDay),
		Circuit: circuit,
	}

	var race *domain.Race

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		if !slices.Contains(s.store.Circuits(), req.Circuit) {
			return apperrors.NotFound("circuit '%s' is not registered", req.Circuit.Name)
		}

		if req.Circuit.Country == nil {
			return apperrors.Required("circuit '%s' has no country", req.Circuit.Name)
		}

		day, err := validation.NormalizeDate(req.Date)
		if err != nil {
			return err
		}

		for _, r := range s.store.Races() {
			if r.Circuit != req.Circuit {
				continue
			}

			other, err := validation.NormalizeDate(r.Date)
			if err != nil {
				return fmt.Errorf("%s: stored race has a bad date: %w", op, err)
			}

			if other == day {
				return apperrors.Duplicate("a race is already planned at circuit %s on %s", req.Circuit.Name, req.Date)
			}
		}

		race = &domain.Race{
			Date:    req.Date,
			Laps:    req.Laps,
			Time:    req.Time,
			Country: req.Circuit.Country,
			Circuit: req.Circuit,
		}
		s.store.AddRace(race)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("race registered",
		slog.String("op", op),
		slog.String("circuit", race.Circuit.Name),
		slog.String("date", race.Date),
	)

	return race, nil
}

func (s *RegistrationServiceImpl) RegisterDriver(in DriverInput) (*domain.Driver, error) {
	const op = "internal.service.registration.RegisterDriver"

	req := driverRequest{
		personRequest: personRequest{
			DNI:       validation.Clean(in.DNI),
			FirstName: validation.Clean(in.FirstName),
			LastName:  validation.Clean(in.LastName),
			Country:   in.Country,
		},
		Number:      in.Number,
		Wins:        in.Wins,
		Poles:       in.Poles,
		FastestLaps: in.FastestLaps,
		Podiums:     in.Podiums,
	}

	var driver *domain.Driver

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		if req.Wins > req.Podiums {
			return apperrors.Conflict("wins (%d) cannot exceed podiums (%d)", req.Wins, req.Podiums)
		}

		if err := s.ensureCountry(req.Country); err != nil {
			return err
		}

		if err := s.ensureFreeDNI(req.DNI); err != nil {
			return err
		}

		for _, d := range s.store.Drivers() {
			if domain.SameName(d.FirstName, req.FirstName) && domain.SameName(d.LastName, req.LastName) {
				return apperrors.Duplicate("a driver named '%s %s' already exists", req.FirstName, req.LastName)
			}
		}

		driver = &domain.Driver{
			Person:      req.person(),
			Number:      req.Number,
			Wins:        req.Wins,
			Poles:       req.Poles,
			FastestLaps: req.FastestLaps,
			Podiums:     req.Podiums,
		}
		s.store.AddDriver(driver)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("driver registered", slog.String("op", op), slog.String("dni", driver.DNI))

	return driver, nil
}

func (s *RegistrationServiceImpl) RegisterMechanic(in MechanicInput) (*domain.Mechanic, error) {
	const op = "internal.service.registration.RegisterMechanic"

	req := mechanicRequest{
		personRequest: personRequest{
			DNI:       validation.Clean(in.DNI),
			FirstName: validation.Clean(in.FirstName),
			LastName:  validation.Clean(in.LastName),
			Country:   in.Country,
		},
		Specialty:       in.Specialty,
		YearsExperience: in.YearsExperience,
	}

	var mechanic *domain.Mechanic

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		if err := s.ensureCountry(req.Country); err != nil {
			return err
		}

		if err := s.ensureFreeDNI(req.DNI); err != nil {
			return err
		}

		mechanic = &domain.Mechanic{
			Person:          req.person(),
			Specialty:       req.Specialty,
			YearsExperience: req.YearsExperience,
		}
		s.store.AddMechanic(mechanic)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("mechanic registered",
		slog.String("op", op),
		slog.String("dni", mechanic.DNI),
		slog.String("specialty", string(mechanic.Specialty)),
	)

	return mechanic, nil
}

// RegisterCar creates a car with no owner; AssignCarToTeam sets one.
func (s *RegistrationServiceImpl) RegisterCar(model, engine string) (*domain.Car, error) {
	const op = "internal.service.registration.RegisterCar"

	req := carRequest{Model: validation.Clean(model), Engine: validation.Clean(engine)}

	var car *domain.Car

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		car = &domain.Car{Model: req.Model, Engine: req.Engine}
		s.store.AddCar(car)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("car registered", slog.String("op", op), slog.String("model", car.Model))

	return car, nil
}

func (s *RegistrationServiceImpl) ensureCountry(c *domain.Country) error {
	if !slices.Contains(s.store.Countries(), c) {
		return apperrors.NotFound("country '%s' is not registered", c.Name)
	}

	return nil
}

// ensureFreeDNI checks the dni against drivers and mechanics alike.
func (s *RegistrationServiceImpl) ensureFreeDNI(dni string) error {
	if _, err := s.store.DriverByDNI(dni); err == nil {
		return apperrors.Duplicate("a driver with dni %s already exists", dni)
	}

	if _, err := s.store.MechanicByDNI(dni); err == nil {
		return apperrors.Duplicate("a mechanic with dni %s already exists", dni)
	}

	return nil
}

func (r personRequest) person() domain.Person {
	return domain.Person{
		DNI:       r.DNI,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Country:   r.Country,
	}
}
