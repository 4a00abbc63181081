// Code generated by mockery v2.53.5. DO NOT EDIT.

package usecasemock

import (
	context "context"

	tournament "github.com/golazo-app/golazo-api/internal/domain/tournament"
	mock "github.com/stretchr/testify/mock"
)

// TournamentProvider is an autogenerated mock type for the TournamentProvider type
type TournamentProvider struct {
	mock.Mock
}

// TournamentSuggestions provides a mock function with given fields: ctx
func (_m *TournamentProvider) TournamentSuggestions(ctx context.Context) ([]tournament.Tournament, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for TournamentSuggestions")
	}

	var r0 []tournament.Tournament
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]tournament.Tournament, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []tournament.Tournament); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]tournament.Tournament)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTournamentProvider creates a new instance of TournamentProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTournamentProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *TournamentProvider {
	mock := &TournamentProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
