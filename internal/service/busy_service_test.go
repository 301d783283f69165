package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
)

type busyListerStub struct {
	details []models.ScheduledPairDetail
	filter  models.PairFilter
	calls   int
}

func (s *busyListerStub) ListDetailed(ctx context.Context, q models.PairFilter) ([]models.ScheduledPairDetail, error) {
	s.calls++
	s.filter = q
	return s.details, nil
}

type busyCacheStub struct {
	stored   map[string]models.BusyMap
	getErr   error
	setKeys  []string
	patterns []string
}

func (s *busyCacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	if s.getErr != nil {
		return s.getErr
	}
	cached, ok := s.stored[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*dest.(*models.BusyMap) = cached
	return nil
}

func (s *busyCacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	s.setKeys = append(s.setKeys, key)
	return nil
}

func (s *busyCacheStub) DeleteByPattern(ctx context.Context, pattern string) error {
	s.patterns = append(s.patterns, pattern)
	return nil
}

func busyDetail(id, day, slotTitle string) models.ScheduledPairDetail {
	return models.ScheduledPairDetail{
		ScheduledPair: models.ScheduledPair{ID: id, DayOfWeek: models.DayOfWeek(day)},
		Discipline:    "Calculus",
		SessionType:   models.SessionLecture,
		TimeSlotTitle: slotTitle,
	}
}

func TestBusyServiceCacheMissBuildsAndStores(t *testing.T) {
	lister := &busyListerStub{details: []models.ScheduledPairDetail{
		busyDetail("pair-1", "MON", "08:30 — 10:00"),
	}}
	cache := &busyCacheStub{stored: map[string]models.BusyMap{}}
	svc := NewBusyService(lister, cache, nil, time.Minute, nil)

	busy, err := svc.RoomBusy(context.Background(), "room-1", dto.BusyQuery{HalfYear: "2024H2"})
	require.NoError(t, err)
	require.Len(t, busy["MON-08:30 — 10:00"], 1)
	assert.Equal(t, "pair-1", busy["MON-08:30 — 10:00"][0].PairID)
	assert.Equal(t, 1, lister.calls)
	assert.Equal(t, "room-1", lister.filter.RoomID)
	assert.Equal(t, []string{"busy:2024H2:room:room-1:all"}, cache.setKeys)
}

func TestBusyServiceCacheHitSkipsLister(t *testing.T) {
	lister := &busyListerStub{}
	cached := models.BusyMap{"TUE-10:10 — 11:40": {{PairID: "pair-9"}}}
	cache := &busyCacheStub{stored: map[string]models.BusyMap{
		"busy:2024H2:teacher:teacher-1:EVEN": cached,
	}}
	svc := NewBusyService(lister, cache, nil, time.Minute, nil)

	busy, err := svc.TeacherBusy(context.Background(), "teacher-1", dto.BusyQuery{HalfYear: "2024H2", WeekType: "EVEN"})
	require.NoError(t, err)
	assert.Equal(t, cached, busy)
	assert.Zero(t, lister.calls)
}

func TestBusyServiceCacheFailureFallsThrough(t *testing.T) {
	lister := &busyListerStub{}
	cache := &busyCacheStub{getErr: errors.New("redis gone")}
	svc := NewBusyService(lister, cache, nil, time.Minute, nil)

	_, err := svc.GroupBusy(context.Background(), "group-1", dto.BusyQuery{HalfYear: "2024H2"})
	require.NoError(t, err)
	assert.Equal(t, 1, lister.calls)
}

func TestBusyServiceNilCache(t *testing.T) {
	lister := &busyListerStub{}
	svc := NewBusyService(lister, nil, nil, time.Minute, nil)

	_, err := svc.GroupBusy(context.Background(), "group-1", dto.BusyQuery{HalfYear: "2024H2"})
	require.NoError(t, err)
	assert.Equal(t, 1, lister.calls)

	// No cache, no invalidation target.
	svc.InvalidateHalfYear(context.Background(), "2024H2")
}

func TestBusyServiceRejectsMalformedHalfYear(t *testing.T) {
	svc := NewBusyService(&busyListerStub{}, nil, nil, time.Minute, nil)

	_, err := svc.RoomBusy(context.Background(), "room-1", dto.BusyQuery{HalfYear: "H2-2024"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestBusyServiceSurfacesOverlaps(t *testing.T) {
	lister := &busyListerStub{details: []models.ScheduledPairDetail{
		busyDetail("pair-1", "MON", "08:30 — 10:00"),
		busyDetail("pair-2", "MON", "08:30 — 10:00"),
	}}
	svc := NewBusyService(lister, nil, nil, time.Minute, nil)

	busy, err := svc.RoomBusy(context.Background(), "room-1", dto.BusyQuery{HalfYear: "2024H2"})
	require.NoError(t, err)
	// Double booking is advisory: both pairs land in the same cell.
	require.Len(t, busy["MON-08:30 — 10:00"], 2)
}

func TestBusyServiceInvalidateHalfYearPattern(t *testing.T) {
	cache := &busyCacheStub{}
	svc := NewBusyService(&busyListerStub{}, cache, nil, time.Minute, nil)

	svc.InvalidateHalfYear(context.Background(), "2024H2")
	assert.Equal(t, []string{"busy:2024H2:*"}, cache.patterns)
}
