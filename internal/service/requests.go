package service

import "github.com/YusovID/racing-league/internal/domain"

type countryRequest struct {
	Name string `label:"country name" validate:"required,person_name"`
	ID   int    `label:"country id" validate:"gt=0"`
}

type teamRequest struct {
	Name    string          `label:"team name" validate:"required"`
	Country *domain.Country `label:"country" validate:"required"`
}

type circuitRequest struct {
	Name    string          `label:"circuit name" validate:"required"`
	Country *domain.Country `label:"country" validate:"required"`
	Length  int             `label:"circuit length" validate:"gt=0"`
}

type raceRequest struct {
	Date    string          `label:"race date" validate:"required,civil_date"`
	Time    string          `label:"race time" validate:"required,clock"`
	Laps    int             `label:"lap count" validate:"gt=0"`
	Circuit *domain.Circuit `label:"circuit" validate:"required"`
}

type personRequest struct {
	DNI       string          `label:"dni" validate:"required,dni"`
	FirstName string          `label:"first name" validate:"required,person_name"`
	LastName  string          `label:"last name" validate:"required,person_name"`
	Country   *domain.Country `label:"country" validate:"required"`
}

type driverRequest struct {
	personRequest
	Number      int `label:"competition number" validate:"gte=0"`
	Wins        int `label:"wins" validate:"gte=0"`
	Poles       int `label:"pole positions" validate:"gte=0"`
	FastestLaps int `label:"fastest laps" validate:"gte=0"`
	Podiums     int `label:"podiums" validate:"gte=0"`
}

type mechanicRequest struct {
	personRequest
	Specialty       domain.Specialty `label:"specialty" validate:"required,specialty"`
	YearsExperience int              `label:"years of experience" validate:"gte=0"`
}

type carRequest struct {
	Model  string `label:"car model" validate:"required,min=2"`
	Engine string `label:"engine" validate:"required"`
}

type participationRequest struct {
	Race       *domain.Race   `label:"race" validate:"required"`
	Driver     *domain.Driver `label:"driver" validate:"required"`
	Car        *domain.Car    `label:"car" validate:"required"`
	AssignedOn string         `label:"assignment date" validate:"required,civil_date"`
}

type resultRequest struct {
	Race     *domain.Race   `label:"race" validate:"required"`
	Driver   *domain.Driver `label:"driver" validate:"required"`
	Position int            `label:"position" validate:"gte=1,lte=20"`
}

type contractRequest struct {
	Driver *domain.Driver `label:"driver" validate:"required"`
	Team   *domain.Team   `label:"team" validate:"required"`
	Date   string         `label:"date" validate:"required,civil_date"`
}

type teamLinkRequest struct {
	Team *domain.Team `label:"team" validate:"required"`
}
