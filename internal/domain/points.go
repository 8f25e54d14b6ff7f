package domain

// Finishing positions a result may record. The result request tags in the
// service layer carry the same bounds.
const (
	MinPosition = 1
	MaxPosition = 20
)

// pointsTable[i] is awarded for finishing position i+1.
var pointsTable = [...]int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}

// PointsFor returns the championship points for a finishing position.
// Positions outside the table score nothing.
func PointsFor(position int) int {
	if position < MinPosition || position > len(pointsTable) {
		return 0
	}

	return pointsTable[position-1]
}

type DriverScore struct {
	Driver *Driver
	Points int
}

type DriverStats struct {
	DNI         string
	FullName    string
	Number      int
	Wins        int
	Podiums     int
	Poles       int
	FastestLaps int
}

func StatsOf(d *Driver) DriverStats {
	return DriverStats{
		DNI:         d.DNI,
		FullName:    d.FullName(),
		Number:      d.Number,
		Wins:        d.Wins,
		Podiums:     d.Podiums,
		Poles:       d.Poles,
		FastestLaps: d.FastestLaps,
	}
}

// TeamParticipations groups the race entries made with cars owned by Team.
// Team is nil for cars that have no owner.
type TeamParticipations struct {
	Team           *Team
	Participations []*Participation
}

type TeamMechanics struct {
	Team      *Team
	Mechanics []*Mechanic
}
