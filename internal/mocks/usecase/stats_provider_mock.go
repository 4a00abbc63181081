// Code generated by mockery v2.53.5. DO NOT EDIT.

package usecasemock

import (
	context "context"

	match "github.com/golazo-app/golazo-api/internal/domain/match"
	mock "github.com/stretchr/testify/mock"

	usecase "github.com/golazo-app/golazo-api/internal/usecase"
)

// StatsProvider is an autogenerated mock type for the StatsProvider type
type StatsProvider struct {
	mock.Mock
}

// IncidentsByMatch provides a mock function with given fields: ctx, matchID
func (_m *StatsProvider) IncidentsByMatch(ctx context.Context, matchID int64) ([]usecase.ExternalIncident, error) {
	ret := _m.Called(ctx, matchID)

	if len(ret) == 0 {
		panic("no return value specified for IncidentsByMatch")
	}

	var r0 []usecase.ExternalIncident
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]usecase.ExternalIncident, error)); ok {
		return rf(ctx, matchID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []usecase.ExternalIncident); ok {
		r0 = rf(ctx, matchID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]usecase.ExternalIncident)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, matchID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// LineupStatsByMatch provides a mock function with given fields: ctx, matchID
func (_m *StatsProvider) LineupStatsByMatch(ctx context.Context, matchID int64) ([]usecase.ExternalPlayerStats, error) {
	ret := _m.Called(ctx, matchID)

	if len(ret) == 0 {
		panic("no return value specified for LineupStatsByMatch")
	}

	var r0 []usecase.ExternalPlayerStats
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]usecase.ExternalPlayerStats, error)); ok {
		return rf(ctx, matchID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []usecase.ExternalPlayerStats); ok {
		r0 = rf(ctx, matchID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]usecase.ExternalPlayerStats)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, matchID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MatchByID provides a mock function with given fields: ctx, matchID
func (_m *StatsProvider) MatchByID(ctx context.Context, matchID int64) (match.Match, error) {
	ret := _m.Called(ctx, matchID)

	if len(ret) == 0 {
		panic("no return value specified for MatchByID")
	}

	var r0 match.Match
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (match.Match, error)); ok {
		return rf(ctx, matchID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) match.Match); ok {
		r0 = rf(ctx, matchID)
	} else {
		r0 = ret.Get(0).(match.Match)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, matchID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MatchesByDate provides a mock function with given fields: ctx, date
func (_m *StatsProvider) MatchesByDate(ctx context.Context, date string) ([]match.Match, error) {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for MatchesByDate")
	}

	var r0 []match.Match
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]match.Match, error)); ok {
		return rf(ctx, date)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []match.Match); ok {
		r0 = rf(ctx, date)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]match.Match)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, date)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ShotmapByMatch provides a mock function with given fields: ctx, matchID
func (_m *StatsProvider) ShotmapByMatch(ctx context.Context, matchID int64) ([]usecase.ExternalShot, error) {
	ret := _m.Called(ctx, matchID)

	if len(ret) == 0 {
		panic("no return value specified for ShotmapByMatch")
	}

	var r0 []usecase.ExternalShot
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]usecase.ExternalShot, error)); ok {
		return rf(ctx, matchID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []usecase.ExternalShot); ok {
		r0 = rf(ctx, matchID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]usecase.ExternalShot)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, matchID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewStatsProvider creates a new instance of StatsProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewStatsProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsProvider {
	mock := &StatsProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
