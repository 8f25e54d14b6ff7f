package service

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/YusovID/racing-league/internal/apperrors"
	"github.com/YusovID/racing-league/internal/domain"
	"github.com/YusovID/racing-league/internal/metrics"
	"github.com/YusovID/racing-league/internal/repository"
	"github.com/YusovID/racing-league/internal/validation"
)

type ReportingService interface {
	ComputePoints() []domain.DriverScore
	Ranking() []domain.DriverScore
	ResultsBetween(from, to string) ([]*domain.RaceResult, error)
	DriverStats(dni string) (domain.DriverStats, error)
	AllDriverStats() []domain.DriverStats
	ParticipationsByTeam() []domain.TeamParticipations
	MechanicsByTeam() []domain.TeamMechanics
	DriverStartsAtCircuit(driver *domain.Driver, circuit *domain.Circuit) int
	RacesAtCircuit(circuit *domain.Circuit) int
}

type ReportingServiceImpl struct {
	BaseService
}

func NewReportingService(store repository.Store, log *slog.Logger, rec *metrics.Recorder) *ReportingServiceImpl {
	return &ReportingServiceImpl{BaseService: NewBaseService(store, log, rec)}
}

// ComputePoints returns one score per driver in registration order.
func (s *ReportingServiceImpl) ComputePoints() []domain.DriverScore {
	var scores []domain.DriverScore

	s.read(func() {
		scores = s.computePoints()
	})

	return scores
}

func (s *ReportingServiceImpl) computePoints() []domain.DriverScore {
	drivers := s.store.Drivers()

	totals := make(map[*domain.Driver]int, len(drivers))
	for _, r := range s.store.Results() {
		totals[r.Driver] += domain.PointsFor(r.Position)
	}

	scores := make([]domain.DriverScore, 0, len(drivers))
	for _, d := range drivers {
		scores = append(scores, domain.DriverScore{Driver: d, Points: totals[d]})
	}

	return scores
}

// Ranking orders ComputePoints by points, highest first. Drivers with equal
// points keep their registration order.
func (s *ReportingServiceImpl) Ranking() []domain.DriverScore {
	scores := s.ComputePoints()

	slices.SortStableFunc(scores, func(a, b domain.DriverScore) int {
		return cmp.Compare(b.Points, a.Points)
	})

	return scores
}

// ResultsBetween returns the results of races held from 'from' to 'to',
// both inclusive. Results come ordered by race date, then by race
// registration order, then by position.
func (s *ReportingServiceImpl) ResultsBetween(from, to string) ([]*domain.RaceResult, error) {
	const op = "internal.service.reporting.ResultsBetween"

	lo, err := validation.NormalizeDate(validation.Clean(from))
	if err != nil {
		return nil, err
	}

	hi, err := validation.NormalizeDate(validation.Clean(to))
	if err != nil {
		return nil, err
	}

	if lo > hi {
		return nil, apperrors.Malformed("range start %s is after its end %s", from, to)
	}

	type dated struct {
		result *domain.RaceResult
		day    string
		index  int
	}

	var (
		picked  []dated
		readErr error
	)

	s.read(func() {
		raceIndex := make(map[*domain.Race]int, len(s.store.Races()))
		for i, r := range s.store.Races() {
			raceIndex[r] = i
		}

		for _, r := range s.store.Results() {
			day, err := validation.NormalizeDate(r.Race.Date)
			if err != nil {
				readErr = fmt.Errorf("%s: stored race has a bad date: %w", op, err)
				return
			}

			if day < lo || day > hi {
				continue
			}

			picked = append(picked, dated{result: r, day: day, index: raceIndex[r.Race]})
		}
	})

	if readErr != nil {
		return nil, readErr
	}

	slices.SortFunc(picked, func(a, b dated) int {
		return cmp.Or(
			cmp.Compare(a.day, b.day),
			cmp.Compare(a.index, b.index),
			cmp.Compare(a.result.Position, b.result.Position),
		)
	})

	results := make([]*domain.RaceResult, 0, len(picked))
	for _, p := range picked {
		results = append(results, p.result)
	}

	s.log.Debug("results listed", slog.String("op", op), slog.String("from", lo), slog.String("to", hi), slog.Int("count", len(results)))

	return results, nil
}

func (s *ReportingServiceImpl) DriverStats(dni string) (domain.DriverStats, error) {
	var (
		stats domain.DriverStats
		err   error
	)

	s.read(func() {
		var d *domain.Driver

		d, err = s.store.DriverByDNI(validation.Clean(dni))
		if err != nil {
			return
		}

		stats = domain.StatsOf(d)
	})

	return stats, err
}

func (s *ReportingServiceImpl) AllDriverStats() []domain.DriverStats {
	var stats []domain.DriverStats

	s.read(func() {
		stats = make([]domain.DriverStats, 0, len(s.store.Drivers()))
		for _, d := range s.store.Drivers() {
			stats = append(stats, domain.StatsOf(d))
		}
	})

	return stats
}

// ParticipationsByTeam groups every race entry by the team that owns the car
// used in it. Teams appear in registration order, including those without
// entries; entries made with cars that have no owner are grouped last under a
// nil Team.
func (s *ReportingServiceImpl) ParticipationsByTeam() []domain.TeamParticipations {
	var groups []domain.TeamParticipations

	s.read(func() {
		teams := s.store.Teams()
		byTeam := make(map[*domain.Team][]*domain.Participation, len(teams))

		for _, r := range s.store.Races() {
			for _, p := range r.Participations {
				byTeam[p.Car.Team] = append(byTeam[p.Car.Team], p)
			}
		}

		groups = make([]domain.TeamParticipations, 0, len(teams)+1)
		for _, t := range teams {
			groups = append(groups, domain.TeamParticipations{Team: t, Participations: byTeam[t]})
		}

		if orphans := byTeam[nil]; len(orphans) > 0 {
			groups = append(groups, domain.TeamParticipations{Participations: orphans})
		}
	})

	return groups
}

func (s *ReportingServiceImpl) MechanicsByTeam() []domain.TeamMechanics {
	var groups []domain.TeamMechanics

	s.read(func() {
		groups = make([]domain.TeamMechanics, 0, len(s.store.Teams()))
		for _, t := range s.store.Teams() {
			groups = append(groups, domain.TeamMechanics{Team: t, Mechanics: slices.Clone(t.Mechanics)})
		}
	})

	return groups
}

// DriverStartsAtCircuit counts the races at circuit the driver took part in.
func (s *ReportingServiceImpl) DriverStartsAtCircuit(driver *domain.Driver, circuit *domain.Circuit) int {
	if driver == nil || circuit == nil {
		return 0
	}

	var n int

	s.read(func() {
		for _, p := range driver.Participations {
			if p.Race.Circuit == circuit {
				n++
			}
		}
	})

	return n
}

func (s *ReportingServiceImpl) RacesAtCircuit(circuit *domain.Circuit) int {
	var n int

	s.read(func() {
		for _, r := range s.store.Races() {
			if r.Circuit == circuit {
				n++
			}
		}
	})

	return n
}
