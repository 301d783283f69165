package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
)

type busyPairLister interface {
	ListDetailed(ctx context.Context, q models.PairFilter) ([]models.ScheduledPairDetail, error)
}

// BusyCache is the cache surface BusyService needs.
type BusyCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type cacheMetricsRecorder interface {
	RecordCacheOperation(hit bool, duration time.Duration)
	ObserveCacheWrite(duration time.Duration)
}

// BusyService derives occupancy maps for rooms, teachers and groups from
// the pair store, with an optional Redis cache in front. Maps are advisory:
// they report overlaps, nothing here prevents them.
type BusyService struct {
	pairs   busyPairLister
	cache   BusyCache
	metrics cacheMetricsRecorder
	ttl     time.Duration
	logger  *zap.Logger
}

// NewBusyService constructs the busy service. A nil cache disables caching.
func NewBusyService(pairs busyPairLister, cache BusyCache, metrics cacheMetricsRecorder, ttl time.Duration, logger *zap.Logger) *BusyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BusyService{pairs: pairs, cache: cache, metrics: metrics, ttl: ttl, logger: logger}
}

// RoomBusy returns the occupancy map of one room.
func (s *BusyService) RoomBusy(ctx context.Context, roomID string, query dto.BusyQuery) (models.BusyMap, error) {
	filter := models.PairFilter{HalfYear: query.HalfYear, RoomID: roomID}
	return s.busyMap(ctx, "room", roomID, query, filter)
}

// TeacherBusy returns the occupancy map of one teacher.
func (s *BusyService) TeacherBusy(ctx context.Context, teacherID string, query dto.BusyQuery) (models.BusyMap, error) {
	filter := models.PairFilter{HalfYear: query.HalfYear, TeacherID: teacherID}
	return s.busyMap(ctx, "teacher", teacherID, query, filter)
}

// GroupBusy returns the occupancy map of one group.
func (s *BusyService) GroupBusy(ctx context.Context, groupID string, query dto.BusyQuery) (models.BusyMap, error) {
	filter := models.PairFilter{HalfYear: query.HalfYear, GroupID: groupID}
	return s.busyMap(ctx, "group", groupID, query, filter)
}

func (s *BusyService) busyMap(ctx context.Context, kind, id string, query dto.BusyQuery, filter models.PairFilter) (models.BusyMap, error) {
	if _, err := models.ParseHalfYear(query.HalfYear); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	if query.WeekType != "" {
		weekType := models.WeekType(query.WeekType)
		filter.WeekType = &weekType
	}

	key := busyCacheKey(query.HalfYear, kind, id, query.WeekType)
	if s.cache != nil {
		start := time.Now()
		var cached models.BusyMap
		err := s.cache.Get(ctx, key, &cached)
		hit := err == nil
		if s.metrics != nil {
			s.metrics.RecordCacheOperation(hit, time.Since(start))
		}
		if hit {
			return cached, nil
		}
		if err != appErrors.ErrCacheMiss {
			s.logger.Warn("busy cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	details, err := s.pairs.ListDetailed(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build busy map")
	}
	busy := models.BuildBusyMap(details)

	if s.cache != nil {
		start := time.Now()
		if err := s.cache.Set(ctx, key, busy, s.ttl); err != nil {
			s.logger.Warn("busy cache write failed", zap.String("key", key), zap.Error(err))
		} else if s.metrics != nil {
			s.metrics.ObserveCacheWrite(time.Since(start))
		}
	}
	return busy, nil
}

// InvalidateHalfYear drops every cached busy map of one half-year. Schedule
// writes call this after commit; a failed invalidation only shortens cache
// freshness, so it is logged and swallowed.
func (s *BusyService) InvalidateHalfYear(ctx context.Context, halfYear string) {
	if s.cache == nil {
		return
	}
	pattern := fmt.Sprintf("busy:%s:*", halfYear)
	if err := s.cache.DeleteByPattern(ctx, pattern); err != nil {
		s.logger.Warn("busy cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
	}
}

func busyCacheKey(halfYear, kind, id, weekType string) string {
	if weekType == "" {
		weekType = "all"
	}
	return fmt.Sprintf("busy:%s:%s:%s:%s", halfYear, kind, id, weekType)
}
