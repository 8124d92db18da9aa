package service

import (
	"context"

	"github.com/JonnyWalker81/workwell/backend/internal/cache"
	"github.com/JonnyWalker81/workwell/backend/internal/models"
)

type bypassCacheKey struct{}

// WithoutCache marks ctx so cached services compute fresh results
func WithoutCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, bypassCacheKey{}, true)
}

func cacheBypassed(ctx context.Context) bool {
	v, _ := ctx.Value(bypassCacheKey{}).(bool)
	return v
}

type cachedCheckinService struct {
	CheckinService
	cache *cache.ResultCache
}

// NewCachedCheckinService wraps inner so listings and advanced analytics are
// served from results for up to cache.TTL. Writes pass straight through and
// evict nothing.
func NewCachedCheckinService(inner CheckinService, rc *cache.ResultCache) CheckinService {
	return &cachedCheckinService{CheckinService: inner, cache: rc}
}

func (s *cachedCheckinService) ListCheckins(ctx context.Context, userID string, filter models.CheckinFilter, page, size int) (*models.Page[models.Checkin], error) {
	if cacheBypassed(ctx) {
		s.cache.Bypass()
		return s.CheckinService.ListCheckins(ctx, userID, filter, page, size)
	}

	page, size = models.NormalizePage(page, size)
	key := cache.CheckinsKey(userID, filter, page, size)

	p, err := cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (models.Page[models.Checkin], error) {
		res, err := s.CheckinService.ListCheckins(ctx, userID, filter, page, size)
		if err != nil {
			return models.Page[models.Checkin]{}, err
		}
		return *res, nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *cachedCheckinService) GetAdvancedAnalytics(ctx context.Context, userID string, filter models.CheckinFilter) (*models.AdvancedAnalytics, error) {
	if cacheBypassed(ctx) {
		s.cache.Bypass()
		return s.CheckinService.GetAdvancedAnalytics(ctx, userID, filter)
	}

	key := cache.AnalyticsKey(userID, filter)

	a, err := cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (models.AdvancedAnalytics, error) {
		res, err := s.CheckinService.GetAdvancedAnalytics(ctx, userID, filter)
		if err != nil {
			return models.AdvancedAnalytics{}, err
		}
		return *res, nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}
