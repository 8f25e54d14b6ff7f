package service

import (
	"testing"

	"github.com/YusovID/racing-league/internal/apperrors"
	"github.com/YusovID/racing-league/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid extends the paddock with a second team and three more races.
type grid struct {
	paddock
	beta    *domain.Team
	lucas   *domain.Driver
	sofia   *domain.Driver
	alpha2  *domain.Car
	betaCar *domain.Car
	monza   *domain.Circuit
	races   []*domain.Race
}

func (l *testLeague) grid(t *testing.T) grid {
	t.Helper()

	g := grid{paddock: l.paddock(t)}

	var err error

	g.beta, err = l.registration.RegisterTeam("Beta", g.argentina)
	require.NoError(t, err)

	g.lucas = l.addDriver(t, "31222333", "Lucas", "Diaz", g.argentina, g.alpha)
	g.sofia = l.addDriver(t, "32333444", "Sofia", "Lopez", g.argentina, g.beta)
	g.alpha2 = l.addCar(t, "X2", g.alpha)
	g.betaCar = l.addCar(t, "B1", g.beta)

	italy, err := l.registration.RegisterCountry(39, "Italia")
	require.NoError(t, err)

	g.monza, err = l.registration.RegisterCircuit("Monza", 5793, italy)
	require.NoError(t, err)

	g.races = []*domain.Race{g.race}
	for _, date := range []string{"1-9-2024", "20-4-2024"} {
		race, err := l.registration.RegisterRace(date, 53, "15:00", g.monza)
		require.NoError(t, err)

		g.races = append(g.races, race)
	}

	return g
}

func TestReportingServiceImpl_ComputePoints(t *testing.T) {
	l := newTestLeague(t)
	g := l.grid(t)

	l.finish(t, g.races[0], g.juan, g.car, 1)
	l.finish(t, g.races[1], g.juan, g.car, 5)
	l.finish(t, g.races[2], g.juan, g.car, 11)

	l.finish(t, g.races[0], g.sofia, g.betaCar, 2)

	scores := l.reporting.ComputePoints()

	require.Len(t, scores, 3)
	assert.Equal(t, domain.DriverScore{Driver: g.juan, Points: 35}, scores[0])
	assert.Equal(t, domain.DriverScore{Driver: g.lucas, Points: 0}, scores[1])
	assert.Equal(t, domain.DriverScore{Driver: g.sofia, Points: 18}, scores[2])
}

func TestReportingServiceImpl_Ranking(t *testing.T) {
	testCases := []struct {
		name     string
		finish   func(t *testing.T, l *testLeague, g grid)
		expected func(g grid) []*domain.Driver
	}{
		{
			name:   "No results keeps registration order",
			finish: func(t *testing.T, l *testLeague, g grid) {},
			expected: func(g grid) []*domain.Driver {
				return []*domain.Driver{g.juan, g.lucas, g.sofia}
			},
		},
		{
			name: "Highest total first",
			finish: func(t *testing.T, l *testLeague, g grid) {
				l.finish(t, g.races[0], g.sofia, g.betaCar, 1)
				l.finish(t, g.races[0], g.lucas, g.alpha2, 2)
				l.finish(t, g.races[0], g.juan, g.car, 3)
			},
			expected: func(g grid) []*domain.Driver {
				return []*domain.Driver{g.sofia, g.lucas, g.juan}
			},
		},
		{
			name: "Equal totals keep registration order",
			finish: func(t *testing.T, l *testLeague, g grid) {
				l.finish(t, g.races[0], g.sofia, g.betaCar, 1)
				l.finish(t, g.races[0], g.lucas, g.alpha2, 2)
				l.finish(t, g.races[1], g.lucas, g.alpha2, 9)
				l.finish(t, g.races[1], g.juan, g.car, 1)
			},
			expected: func(g grid) []*domain.Driver {
				// juan 25, lucas 18+2=20, sofia 25
				return []*domain.Driver{g.juan, g.sofia, g.lucas}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLeague(t)
			g := l.grid(t)

			tc.finish(t, l, g)

			ranking := l.reporting.Ranking()

			got := make([]*domain.Driver, 0, len(ranking))
			for i, s := range ranking {
				got = append(got, s.Driver)

				if i > 0 {
					assert.GreaterOrEqual(t, ranking[i-1].Points, s.Points)
				}
			}

			assert.Equal(t, tc.expected(g), got)
		})
	}
}

func TestReportingServiceImpl_ResultsBetween(t *testing.T) {
	l := newTestLeague(t)
	g := l.grid(t)

	// races: 10-03-2024 (oscar galvez), 1-9-2024 (monza), 20-4-2024 (monza)
	l.finish(t, g.races[1], g.juan, g.car, 2)
	l.finish(t, g.races[1], g.sofia, g.betaCar, 1)
	l.finish(t, g.races[0], g.lucas, g.alpha2, 4)
	l.finish(t, g.races[2], g.sofia, g.betaCar, 3)

	testCases := []struct {
		name          string
		from          string
		to            string
		expected      func() [][2]any
		expectedError error
	}{
		{
			name: "Whole season in calendar order",
			from: "01-01-2024",
			to:   "31-12-2024",
			expected: func() [][2]any {
				return [][2]any{
					{g.lucas, 4},
					{g.sofia, 3},
					{g.sofia, 1},
					{g.juan, 2},
				}
			},
		},
		{
			name: "Bounds are inclusive",
			from: "10-3-2024",
			to:   "20-04-2024",
			expected: func() [][2]any {
				return [][2]any{
					{g.lucas, 4},
					{g.sofia, 3},
				}
			},
		},
		{
			name: "Normalized bounds are accepted",
			from: "2024-09-01",
			to:   "2024-09-01",
			expected: func() [][2]any {
				return [][2]any{
					{g.sofia, 1},
					{g.juan, 2},
				}
			},
		},
		{
			name:     "Empty range",
			from:     "01-01-2023",
			to:       "31-12-2023",
			expected: func() [][2]any { return [][2]any{} },
		},
		{name: "Failure: reversed range", from: "31-12-2024", to: "01-01-2024", expectedError: apperrors.ErrMalformed},
		{name: "Failure: bad date", from: "31-02-2024", to: "01-01-2025", expectedError: apperrors.ErrMalformed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := l.reporting.ResultsBetween(tc.from, tc.to)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, results)

				return
			}

			require.NoError(t, err)

			got := make([][2]any, 0, len(results))
			for _, r := range results {
				got = append(got, [2]any{r.Driver, r.Position})
			}

			assert.Equal(t, tc.expected(), got)
		})
	}
}

func TestReportingServiceImpl_DriverStats(t *testing.T) {
	l := newTestLeague(t)
	g := l.grid(t)

	l.finish(t, g.races[0], g.juan, g.car, 1)
	require.NoError(t, l.association.GrantPolePosition(g.juan))

	stats, err := l.reporting.DriverStats(" 30111222 ")
	require.NoError(t, err)
	assert.Equal(t, domain.DriverStats{
		DNI:      "30111222",
		FullName: "Juan Perez",
		Number:   10,
		Wins:     1,
		Podiums:  1,
		Poles:    1,
	}, stats)

	_, err = l.reporting.DriverStats("99999999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	all := l.reporting.AllDriverStats()
	require.Len(t, all, 3)
	assert.Equal(t, stats, all[0])
	assert.Equal(t, "Sofia Lopez", all[2].FullName)
}

func TestReportingServiceImpl_ParticipationsByTeam(t *testing.T) {
	l := newTestLeague(t)
	g := l.grid(t)

	_, err := l.registration.RegisterTeam("Gamma", g.argentina)
	require.NoError(t, err)

	p1, err := l.association.AssignDriverCarToRace(g.races[0], g.juan, g.car, "01-03-2024")
	require.NoError(t, err)
	p2, err := l.association.AssignDriverCarToRace(g.races[0], g.sofia, g.betaCar, "01-03-2024")
	require.NoError(t, err)
	p3, err := l.association.AssignDriverCarToRace(g.races[1], g.lucas, g.alpha2, "01-08-2024")
	require.NoError(t, err)

	groups := l.reporting.ParticipationsByTeam()

	require.Len(t, groups, 3)
	assert.Same(t, g.alpha, groups[0].Team)
	assert.Equal(t, []*domain.Participation{p1, p3}, groups[0].Participations)
	assert.Same(t, g.beta, groups[1].Team)
	assert.Equal(t, []*domain.Participation{p2}, groups[1].Participations)
	assert.Equal(t, "Gamma", groups[2].Team.Name)
	assert.Empty(t, groups[2].Participations)
}

func TestReportingServiceImpl_MechanicsByTeam(t *testing.T) {
	l := newTestLeague(t)
	g := l.grid(t)

	m, err := l.registration.RegisterMechanic(MechanicInput{
		DNI:       "25999888",
		FirstName: "Carlos",
		LastName:  "Ruiz",
		Country:   g.argentina,
		Specialty: domain.SpecialtyEngine,
	})
	require.NoError(t, err)
	require.NoError(t, l.association.AssignMechanicToTeam(m, g.beta))

	groups := l.reporting.MechanicsByTeam()

	require.Len(t, groups, 2)
	assert.Same(t, g.alpha, groups[0].Team)
	assert.Empty(t, groups[0].Mechanics)
	assert.Equal(t, []*domain.Mechanic{m}, groups[1].Mechanics)
}

func TestReportingServiceImpl_CircuitCounts(t *testing.T) {
	l := newTestLeague(t)
	g := l.grid(t)

	_, err := l.association.AssignDriverCarToRace(g.races[1], g.juan, g.car, "01-08-2024")
	require.NoError(t, err)
	_, err = l.association.AssignDriverCarToRace(g.races[2], g.juan, g.car, "01-04-2024")
	require.NoError(t, err)
	_, err = l.association.AssignDriverCarToRace(g.races[0], g.juan, g.car, "01-03-2024")
	require.NoError(t, err)

	assert.Equal(t, 2, l.reporting.DriverStartsAtCircuit(g.juan, g.monza))
	assert.Equal(t, 1, l.reporting.DriverStartsAtCircuit(g.juan, g.circuit))
	assert.Zero(t, l.reporting.DriverStartsAtCircuit(g.sofia, g.monza))
	assert.Zero(t, l.reporting.DriverStartsAtCircuit(nil, g.monza))

	assert.Equal(t, 2, l.reporting.RacesAtCircuit(g.monza))
	assert.Equal(t, 1, l.reporting.RacesAtCircuit(g.circuit))
}
