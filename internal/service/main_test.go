package service

import (
	"log/slog"
	"testing"

	"github.com/YusovID/racing-league/internal/domain"
	"github.com/YusovID/racing-league/internal/metrics"
	"github.com/YusovID/racing-league/internal/repository/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type testLeague struct {
	store        *memory.Store
	reg          *prometheus.Registry
	registration *RegistrationServiceImpl
	association  *AssociationServiceImpl
	reporting    *ReportingServiceImpl
}

func newTestLeague(t *testing.T) *testLeague {
	t.Helper()

	store := memory.New()
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	log := slog.New(slog.DiscardHandler)

	return &testLeague{
		store:        store,
		reg:          reg,
		registration: NewRegistrationService(store, log, rec),
		association:  NewAssociationService(store, log, rec),
		reporting:    NewReportingService(store, log, rec),
	}
}

// paddock is a small league with one team, a car it owns and a signed driver.
type paddock struct {
	argentina *domain.Country
	alpha     *domain.Team
	circuit   *domain.Circuit
	race      *domain.Race
	juan      *domain.Driver
	car       *domain.Car
}

func (l *testLeague) paddock(t *testing.T) paddock {
	t.Helper()

	var (
		p   paddock
		err error
	)

	p.argentina, err = l.registration.RegisterCountry(1, "Argentina")
	require.NoError(t, err)

	p.alpha, err = l.registration.RegisterTeam("Alpha", p.argentina)
	require.NoError(t, err)

	p.circuit, err = l.registration.RegisterCircuit("Autodromo Oscar Galvez", 4259, p.argentina)
	require.NoError(t, err)

	p.race, err = l.registration.RegisterRace("10-03-2024", 60, "14:00", p.circuit)
	require.NoError(t, err)

	p.juan, err = l.registration.RegisterDriver(DriverInput{
		DNI:       "30111222",
		FirstName: "Juan",
		LastName:  "Perez",
		Country:   p.argentina,
		Number:    10,
	})
	require.NoError(t, err)

	p.car, err = l.registration.RegisterCar("X1", "EngineA")
	require.NoError(t, err)

	require.NoError(t, l.association.AssignCarToTeam(p.car, p.alpha))

	_, err = l.association.AssignDriverToTeam(p.juan, p.alpha, "01-01-2024")
	require.NoError(t, err)

	return p
}

// addDriver registers a driver signed with team and entered in nothing.
func (l *testLeague) addDriver(t *testing.T, dni, first, last string, country *domain.Country, team *domain.Team) *domain.Driver {
	t.Helper()

	d, err := l.registration.RegisterDriver(DriverInput{DNI: dni, FirstName: first, LastName: last, Country: country})
	require.NoError(t, err)

	_, err = l.association.AssignDriverToTeam(d, team, "01-01-2024")
	require.NoError(t, err)

	return d
}

// addCar registers a car owned by team.
func (l *testLeague) addCar(t *testing.T, model string, team *domain.Team) *domain.Car {
	t.Helper()

	c, err := l.registration.RegisterCar(model, "V6 Turbo")
	require.NoError(t, err)
	require.NoError(t, l.association.AssignCarToTeam(c, team))

	return c
}

// finish enters the driver with car in race and records its position.
func (l *testLeague) finish(t *testing.T, race *domain.Race, d *domain.Driver, car *domain.Car, position int) {
	t.Helper()

	_, err := l.association.AssignDriverCarToRace(race, d, car, race.Date)
	require.NoError(t, err)

	_, err = l.association.RecordResult(race, d, position, false)
	require.NoError(t, err)
}
