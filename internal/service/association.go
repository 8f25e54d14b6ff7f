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
	"github.com/google/uuid"
)

type AssociationService interface {
	AssignDriverCarToRace(race *domain.Race, driver *domain.Driver, car *domain.Car, assignedOn string) (*domain.Participation, error)
	RecordResult(race *domain.Race, driver *domain.Driver, position int, fastestLap bool) (*domain.RaceResult, error)
	AssignDriverToTeam(driver *domain.Driver, team *domain.Team, start string) (*domain.Contract, error)
	TerminateContract(driver *domain.Driver, team *domain.Team, end string) (*domain.Contract, error)
	AssignCarToTeam(car *domain.Car, team *domain.Team) error
	AssignMechanicToTeam(mechanic *domain.Mechanic, team *domain.Team) error
	GrantPolePosition(driver *domain.Driver) error
}

type AssociationServiceImpl struct {
	BaseService
}

func NewAssociationService(store repository.Store, log *slog.Logger, rec *metrics.Recorder) *AssociationServiceImpl {
	return &AssociationServiceImpl{BaseService: NewBaseService(store, log, rec)}
}

// noEndDate is lower than any normalized date.
const noEndDate = "0000-00-00"

// AssignDriverCarToRace enters driver with car in race. Both must currently
// belong to the same team: the driver through its active contract and the car
// through its owner.
func (s *AssociationServiceImpl) AssignDriverCarToRace(
	race *domain.Race,
	driver *domain.Driver,
	car *domain.Car,
	assignedOn string,
) (*domain.Participation, error) {
	const op = "internal.service.association.AssignDriverCarToRace"

	req := participationRequest{Race: race, Driver: driver, Car: car, AssignedOn: validation.Clean(assignedOn)}

	var participation *domain.Participation

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		if err := s.ensureRace(race); err != nil {
			return err
		}

		if err := s.ensureDriver(driver); err != nil {
			return err
		}

		if err := s.ensureCar(car); err != nil {
			return err
		}

		for _, p := range race.Participations {
			if p.Car == car {
				return apperrors.Conflict("car %s is already assigned to another driver in this race", car.Model)
			}
		}

		for _, p := range race.Participations {
			if p.Driver == driver {
				return apperrors.Conflict("driver %s is already racing with another car in this race", driver.FullName())
			}
		}

		contract := driver.ActiveContract()
		if contract == nil {
			return apperrors.Precondition("driver %s has no active contract with any team", driver.FullName())
		}

		if car.Team == nil {
			return apperrors.Precondition("car %s is not assigned to any team", car.Model)
		}

		if contract.Team != car.Team {
			return apperrors.Conflict("driver %s belongs to %s, but car %s belongs to %s",
				driver.FullName(), contract.Team.Name, car.Model, car.Team.Name)
		}

		participation = &domain.Participation{
			ID:         uuid.New(),
			AssignedOn: req.AssignedOn,
			Driver:     driver,
			Car:        car,
			Race:       race,
		}

		race.Participations = append(race.Participations, participation)
		driver.Participations = append(driver.Participations, participation)
		car.Participations = append(car.Participations, participation)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("driver entered in race",
		slog.String("op", op),
		slog.String("participation_id", participation.ID.String()),
		slog.String("dni", driver.DNI),
		slog.String("car", car.Model),
		slog.String("race_date", race.Date),
	)

	return participation, nil
}

// RecordResult stores driver's final position in race and updates the
// driver's counters: a win also counts as a podium.
func (s *AssociationServiceImpl) RecordResult(
	race *domain.Race,
	driver *domain.Driver,
	position int,
	fastestLap bool,
) (*domain.RaceResult, error) {
	const op = "internal.service.association.RecordResult"

	req := resultRequest{Race: race, Driver: driver, Position: position}

	var result *domain.RaceResult

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		if !driver.RacedIn(race) {
			return apperrors.Precondition("driver %s did not take part in this race", driver.FullName())
		}

		for _, r := range s.store.Results() {
			if r.Race != race {
				continue
			}

			if r.Driver == driver {
				return apperrors.Duplicate("driver %s already has a result for this race", driver.FullName())
			}

			if r.Position == position {
				return apperrors.Duplicate("position %d is already taken by %s in this race", position, r.Driver.FullName())
			}
		}

		result = &domain.RaceResult{
			ID:         uuid.New(),
			Driver:     driver,
			Position:   position,
			Race:       race,
			FastestLap: fastestLap,
		}
		s.store.AddResult(result)

		if position == 1 {
			driver.Wins++
		}

		if position <= 3 {
			driver.Podiums++
		}

		if fastestLap {
			driver.FastestLaps++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("result recorded",
		slog.String("op", op),
		slog.String("result_id", result.ID.String()),
		slog.String("dni", driver.DNI),
		slog.Int("position", position),
		slog.Bool("fastest_lap", fastestLap),
	)

	return result, nil
}

// AssignDriverToTeam opens a contract starting on start. The driver must not
// hold an active contract, and start must fall after every earlier contract's end.
func (s *AssociationServiceImpl) AssignDriverToTeam(driver *domain.Driver, team *domain.Team, start string) (*domain.Contract, error) {
	const op = "internal.service.association.AssignDriverToTeam"

	req := contractRequest{Driver: driver, Team: team, Date: validation.Clean(start)}

	var contract *domain.Contract

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		if err := s.ensureDriver(driver); err != nil {
			return err
		}

		if err := s.ensureTeam(team); err != nil {
			return err
		}

		newStart, err := validation.NormalizeDate(req.Date)
		if err != nil {
			return err
		}

		latestEnd := noEndDate

		for _, c := range driver.Contracts {
			if c.Active() {
				return apperrors.Conflict("driver %s already has an active contract with team %s", driver.FullName(), c.Team.Name)
			}

			end, err := validation.NormalizeDate(c.End)
			if err != nil {
				return fmt.Errorf("%s: stored contract has a bad end date: %w", op, err)
			}

			if end > latestEnd {
				latestEnd = end
			}
		}

		if newStart <= latestEnd {
			return apperrors.Conflict("start date %s overlaps an earlier contract, it must be after %s",
				req.Date, latestEnd)
		}

		contract = &domain.Contract{
			ID:     uuid.New(),
			Start:  req.Date,
			Driver: driver,
			Team:   team,
		}

		driver.Contracts = append(driver.Contracts, contract)
		team.Contracts = append(team.Contracts, contract)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("driver signed",
		slog.String("op", op),
		slog.String("contract_id", contract.ID.String()),
		slog.String("dni", driver.DNI),
		slog.String("team", team.Name),
		slog.String("start", contract.Start),
	)

	return contract, nil
}

// TerminateContract closes the active contract between driver and team on end.
func (s *AssociationServiceImpl) TerminateContract(driver *domain.Driver, team *domain.Team, end string) (*domain.Contract, error) {
	const op = "internal.service.association.TerminateContract"

	req := contractRequest{Driver: driver, Team: team, Date: validation.Clean(end)}

	var active *domain.Contract

	err := s.transaction(op, func() error {
		if err := validation.ValidateStruct(req); err != nil {
			return err
		}

		for _, c := range driver.Contracts {
			if c.Team == team && c.Active() {
				active = c
				break
			}
		}

		if active == nil {
			return apperrors.Precondition("driver %s has no active contract with %s", driver.FullName(), team.Name)
		}

		cmp, err := validation.CompareDates(req.Date, active.Start)
		if err != nil {
			return err
		}

		if cmp < 0 {
			return apperrors.Conflict("end date %s cannot be before the start date %s", req.Date, active.Start)
		}

		active.End = req.Date

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("contract terminated",
		slog.String("op", op),
		slog.String("contract_id", active.ID.String()),
		slog.String("dni", driver.DNI),
		slog.String("team", team.Name),
		slog.String("end", active.End),
	)

	return active, nil
}

// AssignCarToTeam makes team the single owner of car.
func (s *AssociationServiceImpl) AssignCarToTeam(car *domain.Car, team *domain.Team) error {
	const op = "internal.service.association.AssignCarToTeam"

	return s.transaction(op, func() error {
		if car == nil {
			return apperrors.Required("car is required")
		}

		if err := validation.ValidateStruct(teamLinkRequest{Team: team}); err != nil {
			return err
		}

		if err := s.ensureCar(car); err != nil {
			return err
		}

		if err := s.ensureTeam(team); err != nil {
			return err
		}

		if car.Team != nil {
			return apperrors.Conflict("car %s already belongs to team %s", car.Model, car.Team.Name)
		}

		team.Cars = append(team.Cars, car)
		car.Team = team

		s.log.Info("car assigned", slog.String("op", op), slog.String("car", car.Model), slog.String("team", team.Name))

		return nil
	})
}

// AssignMechanicToTeam adds mechanic to team's staff. A mechanic may work for
// several teams at once.
func (s *AssociationServiceImpl) AssignMechanicToTeam(mechanic *domain.Mechanic, team *domain.Team) error {
	const op = "internal.service.association.AssignMechanicToTeam"

	return s.transaction(op, func() error {
		if mechanic == nil {
			return apperrors.Required("mechanic is required")
		}

		if err := validation.ValidateStruct(teamLinkRequest{Team: team}); err != nil {
			return err
		}

		if err := s.ensureMechanic(mechanic); err != nil {
			return err
		}

		if err := s.ensureTeam(team); err != nil {
			return err
		}

		if team.HasMechanic(mechanic) {
			return apperrors.Duplicate("mechanic %s already works for %s", mechanic.FullName(), team.Name)
		}

		team.Mechanics = append(team.Mechanics, mechanic)
		mechanic.Teams = append(mechanic.Teams, team)

		s.log.Info("mechanic assigned", slog.String("op", op), slog.String("dni", mechanic.DNI), slog.String("team", team.Name))

		return nil
	})
}

func (s *AssociationServiceImpl) GrantPolePosition(driver *domain.Driver) error {
	const op = "internal.service.association.GrantPolePosition"

	return s.transaction(op, func() error {
		if driver == nil {
			return apperrors.Required("driver is required")
		}

		if err := s.ensureDriver(driver); err != nil {
			return err
		}

		driver.Poles++

		s.log.Info("pole position granted", slog.String("op", op), slog.String("dni", driver.DNI), slog.Int("poles", driver.Poles))

		return nil
	})
}

func (s *AssociationServiceImpl) ensureRace(r *domain.Race) error {
	if !slices.Contains(s.store.Races(), r) {
		return apperrors.NotFound("race at %s on %s is not registered", circuitName(r), r.Date)
	}

	return nil
}

func (s *AssociationServiceImpl) ensureDriver(d *domain.Driver) error {
	if !slices.Contains(s.store.Drivers(), d) {
		return apperrors.NotFound("driver with dni %s is not registered", d.DNI)
	}

	return nil
}

func (s *AssociationServiceImpl) ensureCar(c *domain.Car) error {
	if !slices.Contains(s.store.Cars(), c) {
		return apperrors.NotFound("car %s is not registered", c.Model)
	}

	return nil
}

func (s *AssociationServiceImpl) ensureMechanic(m *domain.Mechanic) error {
	if !slices.Contains(s.store.Mechanics(), m) {
		return apperrors.NotFound("mechanic with dni %s is not registered", m.DNI)
	}

	return nil
}

func (s *AssociationServiceImpl) ensureTeam(t *domain.Team) error {
	if !slices.Contains(s.store.Teams(), t) {
		return apperrors.NotFound("team '%s' is not registered", t.Name)
	}

	return nil
}

func circuitName(r *domain.Race) string {
	if r.Circuit == nil {
		return "an unknown circuit"
	}

	return r.Circuit.Name
}
