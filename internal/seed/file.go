// Package seed loads the initial league from a YAML document.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a whole seed document. Entities refer to each other by natural key:
// countries by id, teams and circuits by name, people by dni, cars by the
// seed-local key and races by circuit and date.
//
// Driver counters are the driver's record before any result listed in the
// file; every result adds to them as it is imported.
type File struct {
	Countries      []Country       `yaml:"countries"`
	Circuits       []Circuit       `yaml:"circuits"`
	Teams          []Team          `yaml:"teams"`
	Cars           []Car           `yaml:"cars"`
	Drivers        []Driver        `yaml:"drivers"`
	Mechanics      []Mechanic      `yaml:"mechanics"`
	Races          []Race          `yaml:"races"`
	Contracts      []Contract      `yaml:"contracts"`
	Participations []Participation `yaml:"participations"`
	Results        []Result        `yaml:"results"`
	Poles          []string        `yaml:"poles"`
}

type Country struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type Circuit struct {
	Name    string `yaml:"name"`
	Length  int    `yaml:"length"`
	Country int    `yaml:"country"`
}

type Team struct {
	Name    string `yaml:"name"`
	Country int    `yaml:"country"`
}

type Car struct {
	Key    string `yaml:"key"`
	Model  string `yaml:"model"`
	Engine string `yaml:"engine"`
	Team   string `yaml:"team,omitempty"`
}

type Driver struct {
	DNI         string `yaml:"dni"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Country     int    `yaml:"country"`
	Number      int    `yaml:"number"`
	Wins        int    `yaml:"wins"`
	Poles       int    `yaml:"poles"`
	FastestLaps int    `yaml:"fastest_laps"`
	Podiums     int    `yaml:"podiums"`
}

type Mechanic struct {
	DNI             string   `yaml:"dni"`
	FirstName       string   `yaml:"first_name"`
	LastName        string   `yaml:"last_name"`
	Country         int      `yaml:"country"`
	Specialty       string   `yaml:"specialty"`
	YearsExperience int      `yaml:"years_experience"`
	Teams           []string `yaml:"teams,omitempty"`
}

type Race struct {
	Circuit string `yaml:"circuit"`
	Date    string `yaml:"date"`
	Laps    int    `yaml:"laps"`
	Time    string `yaml:"time"`
}

type Contract struct {
	Driver string `yaml:"driver"`
	Team   string `yaml:"team"`
	Start  string `yaml:"start"`
	End    string `yaml:"end,omitempty"`
}

// RaceRef names a race by its circuit and date.
type RaceRef struct {
	Circuit string `yaml:"circuit"`
	Date    string `yaml:"date"`
}

type Participation struct {
	Race       RaceRef `yaml:"race"`
	Driver     string  `yaml:"driver"`
	Car        string  `yaml:"car"`
	AssignedOn string  `yaml:"assigned_on"`
}

type Result struct {
	Race       RaceRef `yaml:"race"`
	Driver     string  `yaml:"driver"`
	Position   int     `yaml:"position"`
	FastestLap bool    `yaml:"fastest_lap"`
}

// Load reads the seed document at path. Unknown keys are an error.
func Load(path string) (*File, error) {
	const op = "internal.seed.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a seed document from r. An empty document is an empty league.
func Decode(r io.Reader) (*File, error) {
	const op = "internal.seed.Decode"

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &file, nil
}
