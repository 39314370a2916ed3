package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cityCacheKey = "wukong:admin:cities"

// UpstreamError is a non-200 answer from the consumer-facing backend.
// The proxy passes its status and body through to the dashboard.
type UpstreamError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.StatusCode)
}

// CityService proxies the upstream /city endpoint, optionally caching
// successful responses in Redis.
type CityService struct {
	backendURL string
	client     *http.Client
	cache      *redis.Client
	cacheTTL   time.Duration
}

// NewCityService builds the proxy. cache may be nil to disable caching.
func NewCityService(backendURL string, cache *redis.Client, cacheTTL time.Duration) *CityService {
	return &CityService{
		backendURL: backendURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// FetchCities returns the upstream city-list body verbatim. Backend
// error responses surface as *UpstreamError; transport failures return
// a plain error.
func (s *CityService) FetchCities(ctx context.Context) (json.RawMessage, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cityCacheKey).Bytes()
		if err == nil {
			return cached, nil
		}
		if err != redis.Nil {
			zap.L().Warn("city cache read failed", zap.Error(err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.backendURL+"/city", nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("s.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll -> %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	if s.cache != nil {
		if err = s.cache.Set(ctx, cityCacheKey, body, s.cacheTTL).Err(); err != nil {
			zap.L().Warn("city cache write failed", zap.Error(err))
		}
	}

	return body, nil
}
