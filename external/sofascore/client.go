package sofascore

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/golazo-app/golazo-api/internal/domain/match"
	"github.com/golazo-app/golazo-api/internal/platform/logging"
	"github.com/golazo-app/golazo-api/internal/platform/resilience"
	"github.com/golazo-app/golazo-api/internal/usecase"
)

const (
	defaultBaseURL   = "https://www.sofascore.com/api/v1"
	defaultUserAgent = "golazo-api/1.0"
)

var errSofaScoreTransient = crerr.New("sofascore transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches football data from the SofaScore public API. It
// implements usecase.StatsProvider and usecase.TournamentProvider.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		userAgent:      userAgent,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) MatchesByDate(ctx context.Context, date string) ([]match.Match, error) {
	var envelope scheduledEventsEnvelope
	path := "/sport/football/scheduled-events/" + date
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch scheduled events date=%s: %w", date, err)
	}

	out := make([]match.Match, 0, len(envelope.Events))
	for _, event := range envelope.Events {
		out = append(out, mapEvent(event))
	}
	return out, nil
}

func (c *Client) MatchByID(ctx context.Context, matchID int64) (match.Match, error) {
	var envelope eventEnvelope
	path := fmt.Sprintf("/event/%d", matchID)
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return match.Match{}, fmt.Errorf("fetch event id=%d: %w", matchID, err)
	}
	return mapEvent(envelope.Event), nil
}

func (c *Client) ShotmapByMatch(ctx context.Context, matchID int64) ([]usecase.ExternalShot, error) {
	var envelope shotmapEnvelope
	path := fmt.Sprintf("/event/%d/shotmap", matchID)
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch shotmap match_id=%d: %w", matchID, err)
	}

	out := make([]usecase.ExternalShot, 0, len(envelope.Shotmap))
	for _, shot := range envelope.Shotmap {
		out = append(out, mapShot(shot))
	}
	return out, nil
}

func (c *Client) LineupStatsByMatch(ctx context.Context, matchID int64) ([]usecase.ExternalPlayerStats, error) {
	var envelope lineupsEnvelope
	path := fmt.Sprintf("/event/%d/lineups", matchID)
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch lineups match_id=%d: %w", matchID, err)
	}
	return mapLineups(envelope), nil
}

func (c *Client) IncidentsByMatch(ctx context.Context, matchID int64) ([]usecase.ExternalIncident, error) {
	var envelope incidentsEnvelope
	path := fmt.Sprintf("/event/%d/incidents", matchID)
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch incidents match_id=%d: %w", matchID, err)
	}

	out := make([]usecase.ExternalIncident, 0, len(envelope.Incidents))
	for _, incident := range envelope.Incidents {
		out = append(out, mapIncident(incident))
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	fullURL := c.baseURL + path

	// The breaker is consulted inside the flight: collapsed callers share
	// the leader's outcome and must charge it exactly once per upstream
	// request, or half-open probe slots leak and the breaker never closes.
	out, err, _ := c.flight.Do(path, func() (any, error) {
		if c.circuitEnabled {
			if allowErr := c.breaker.Allow(); allowErr != nil {
				c.logger.WarnContext(ctx, "sofascore circuit breaker rejected request", "state", c.breaker.State())
				return nil, fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
			}
		}

		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isSofaScoreCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("user-agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errSofaScoreTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errSofaScoreTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if resp.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: provider has no data for this resource", usecase.ErrNotFound)
			} else {
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: provider status=%d body=%s", errSofaScoreTransient, resp.StatusCode, abbreviateBody(raw))
				} else {
					return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "sofascore request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isSofaScoreCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errSofaScoreTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
