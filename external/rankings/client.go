package rankings

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/fairwaylabs/golfdata/internal/platform/logging"
	"github.com/fairwaylabs/golfdata/internal/platform/resilience"
	"github.com/fairwaylabs/golfdata/internal/usecase"
)

const (
	defaultBaseURL     = "https://api.owgr.example.com/v1"
	defaultTimeout     = 20 * time.Second
	maxResponseBytes   = 6 << 20
	rankingsListPath   = "/rankings"
	singleflightWindow = "rankings"
)

var apiTokenParamRegex = regexp.MustCompile(`api_token=[^&\s"']+`)
var errRankingsTransient = crerr.New("rankings transient failure")

type ClientConfig struct {
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches world-ranking data from the upstream provider. It implements
// usecase.RankingProvider.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

type rankingsEnvelope struct {
	Data []rankingEntry `json:"data"`
}

type rankingEntry struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchRankings pulls the full current ranking list. Concurrent callers share
// one upstream request.
func (c *Client) FetchRankings(ctx context.Context) ([]usecase.ExternalRanking, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "rankings circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: ranking provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	buf := bytebufferpool.Get()
	buf.WriteString(c.baseURL)
	buf.WriteString(rankingsListPath)
	buf.WriteString("?api_token=")
	buf.WriteString(c.token)
	fullURL := buf.String()
	bytebufferpool.Put(buf)

	out, err, _ := c.flight.Do(singleflightWindow, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errRankingsTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var envelope rankingsEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}

	entries := make([]usecase.ExternalRanking, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		entries = append(entries, usecase.ExternalRanking{
			ExternalID: strings.TrimSpace(item.PlayerID),
			Name:       strings.TrimSpace(item.Name),
			Position:   item.Position,
		})
	}

	return entries, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		raw, err := c.doOnce(fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !crerr.Is(err, errRankingsTransient) {
			return nil, err
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
	c.logger.WarnContext(ctx, "rankings request failed", "url", redactURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func (c *Client) doOnce(fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("accept", "application/json")

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, crerr.Wrapf(errRankingsTransient, "send request: %s", sanitizeSensitiveText(err.Error(), c.token))
	}

	status := resp.StatusCode()
	body := resp.Body()
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("provider response too large: %d bytes", len(body))
	}

	if status >= 200 && status < 300 {
		// resp's buffer is reused after release; hand back a copy.
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	}

	if isRetryableStatus(status) {
		return nil, crerr.Wrapf(errRankingsTransient, "provider status=%d body=%s", status, abbreviateBody(body))
	}
	return nil, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(body))
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const maxLen = 256
	value := strings.TrimSpace(string(raw))
	if len(value) > maxLen {
		return value[:maxLen] + "..."
	}
	return value
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return apiTokenParamRegex.ReplaceAllString(value, "api_token=REDACTED")
}

func redactURL(fullURL string) string {
	return apiTokenParamRegex.ReplaceAllString(fullURL, "api_token=REDACTED")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
