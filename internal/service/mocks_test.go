package service

import (
	"github.com/YusovID/racing-league/internal/domain"
	"github.com/YusovID/racing-league/internal/repository"
	"github.com/stretchr/testify/mock"
)

// StoreMock mocks the store methods the tests stub. Calling any other
// method panics through the nil embedded Store.
type StoreMock struct {
	mock.Mock
	repository.Store
}

var _ repository.Store = (*StoreMock)(nil)

func (m *StoreMock) WithLock(fn func() error) error {
	return fn()
}

func (m *StoreMock) Countries() []*domain.Country {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).([]*domain.Country)
}

func (m *StoreMock) Teams() []*domain.Team {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).([]*domain.Team)
}

func (m *StoreMock) AddTeam(t *domain.Team) {
	m.Called(t)
}

func (m *StoreMock) Drivers() []*domain.Driver {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).([]*domain.Driver)
}

func (m *StoreMock) DriverByDNI(dni string) (*domain.Driver, error) {
	args := m.Called(dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *StoreMock) MechanicByDNI(dni string) (*domain.Mechanic, error) {
	args := m.Called(dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Mechanic), args.Error(1)
}

func (m *StoreMock) AddDriver(d *domain.Driver) {
	m.Called(d)
}
