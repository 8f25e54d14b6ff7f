package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/YusovID/racing-league/internal/config"
	"github.com/YusovID/racing-league/internal/domain"
	"github.com/YusovID/racing-league/internal/service"
	"github.com/fatih/color"
)

var heading = color.New(color.FgCyan, color.Bold)

// writeReport prints the startup report: ranking, results in the configured
// range, driver stats, teams and circuit usage.
func writeReport(out io.Writer, reporting service.ReportingService, window config.Report) error {
	results, err := reporting.ResultsBetween(window.From, window.To)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	section(tw, "Ranking")
	fmt.Fprintln(tw, "#\tDRIVER\tNUMBER\tPOINTS")
	for i, s := range reporting.Ranking() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", i+1, s.Driver.FullName(), s.Driver.Number, s.Points)
	}

	section(tw, fmt.Sprintf("Results %s to %s", window.From, window.To))
	fmt.Fprintln(tw, "DATE\tCIRCUIT\tPOS\tDRIVER\tPOINTS\tFASTEST LAP")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%s\n",
			r.Race.Date, r.Race.Circuit.Name, r.Position, r.Driver.FullName(),
			domain.PointsFor(r.Position), yesNo(r.FastestLap))
	}

	section(tw, "Drivers")
	fmt.Fprintln(tw, "DNI\tDRIVER\tNUMBER\tWINS\tPODIUMS\tPOLES\tFASTEST LAPS")
	for _, s := range reporting.AllDriverStats() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			s.DNI, s.FullName, s.Number, s.Wins, s.Podiums, s.Poles, s.FastestLaps)
	}

	mechanics := make(map[*domain.Team][]*domain.Mechanic)
	for _, g := range reporting.MechanicsByTeam() {
		mechanics[g.Team] = g.Mechanics
	}

	section(tw, "Teams")
	fmt.Fprintln(tw, "TEAM\tCARS\tRACE ENTRIES\tMECHANICS")
	for _, g := range reporting.ParticipationsByTeam() {
		name, cars := "(no team)", "-"
		if g.Team != nil {
			name, cars = g.Team.Name, carModels(g.Team.Cars)
		}

		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", name, cars, len(g.Participations), mechanicNames(mechanics[g.Team]))
	}

	section(tw, "Circuits")
	fmt.Fprintln(tw, "CIRCUIT\tRACES")
	for _, c := range circuits(results) {
		fmt.Fprintf(tw, "%s\t%d\n", c.Name, reporting.RacesAtCircuit(c))
	}

	return tw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	heading.Fprintln(w, title)
}

// circuits lists the circuits of results once each, in order of appearance.
func circuits(results []*domain.RaceResult) []*domain.Circuit {
	var seen []*domain.Circuit

	for _, r := range results {
		c := r.Race.Circuit
		if !slices.Contains(seen, c) {
			seen = append(seen, c)
		}
	}

	return seen
}

func carModels(cars []*domain.Car) string {
	if len(cars) == 0 {
		return "-"
	}

	models := make([]string, 0, len(cars))
	for _, c := range cars {
		models = append(models, c.Model)
	}

	return strings.Join(models, ", ")
}

func mechanicNames(list []*domain.Mechanic) string {
	if len(list) == 0 {
		return "-"
	}

	names := make([]string, 0, len(list))
	for _, m := range list {
		names = append(names, fmt.Sprintf("%s (%s)", m.FullName(), m.Specialty))
	}

	return strings.Join(names, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
