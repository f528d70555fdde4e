// Package apifootball is the api-football v3 client feeding the ingestion
// workflow.
package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/platform/resilience"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

const (
	DefaultBaseURL   = "https://v3.football.api-sports.io"
	DefaultHost      = "v3.football.api-sports.io"
	maxResponseBytes = 6 << 20
)

var errTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Host       string
	Key        string
	Timeout    time.Duration
	// RequestsPerMinute caps outgoing calls. Zero disables the limiter.
	RequestsPerMinute int
	Logger            *logging.Logger
	CircuitBreaker    resilience.BreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	host           string
	key            string
	logger         *logging.Logger
	limiter        *rate.Limiter
	breaker        *resilience.Breaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = DefaultHost
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	breakerCfg := cfg.CircuitBreaker
	onStateChange := breakerCfg.OnStateChange
	breakerCfg.OnStateChange = func(from, to resilience.State) {
		logger.Warn("api-football circuit breaker state changed", "from", from, "to", to)
		if onStateChange != nil {
			onStateChange(from, to)
		}
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		host:           host,
		key:            strings.TrimSpace(cfg.Key),
		logger:         logger,
		limiter:        limiter,
		breaker:        resilience.NewBreaker(breakerCfg),
	}
}

// doJSON performs one GET, decodes the envelope into target and rejects
// responses that carry zero results.
func doJSON[T any](ctx context.Context, c *Client, path string, query url.Values, target *envelope[T]) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var raw []byte
	call := func() error {
		var err error
		raw, err = c.executeRequest(ctx, fullURL)
		return err
	}

	if err := c.breaker.Do(call, isTransientFailure); err != nil {
		if stderrors.Is(err, resilience.ErrOpen) {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return fmt.Errorf("%w: %s: provider failed repeatedly, circuit breaker is open", usecase.ErrTransport, path)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: %w", usecase.ErrTransport, path, err)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %s: decode provider payload: %v", usecase.ErrTransport, path, err)
	}
	if target.Results == 0 {
		return fmt.Errorf("%w: %s", usecase.ErrEmptyResult, describeErrors(target.Errors, target.Error))
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, crerr.Wrap(err, "wait for request quota")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-rapidapi-key", c.key)
	req.Header.Set("x-rapidapi-host", c.host)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		wrapped := crerr.Wrapf(errTransient, "send request: %s", sanitizeSensitiveText(err.Error(), c.key))
		c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", wrapped)
		return nil, wrapped
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, crerr.Wrapf(errTransient, "read response body: %v", err)
	}

	c.logger.DebugContext(ctx, "api-football request completed",
		"url", fullURL,
		"status", resp.StatusCode,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if isTransientStatus(resp.StatusCode) {
			return nil, crerr.Wrapf(errTransient, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		}
		return nil, crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}
	return raw, nil
}

func isTransientFailure(err error) bool {
	return crerr.Is(err, errTransient)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" || key == "" {
		return value
	}
	return strings.ReplaceAll(value, key, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

// describeErrors renders the envelope's errors field, which the provider
// sends either as an empty array or as an object keyed by error kind.
func describeErrors(values ...any) string {
	parts := make([]string, 0, 2)
	for _, value := range values {
		switch v := value.(type) {
		case nil:
		case string:
			if s := strings.TrimSpace(v); s != "" {
				parts = append(parts, s)
			}
		case []any:
			for _, item := range v {
				if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
					parts = append(parts, s)
				}
			}
		case map[string]any:
			keys := make([]string, 0, len(v))
			for key := range v {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				parts = append(parts, key+": "+strings.TrimSpace(fmt.Sprint(v[key])))
			}
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	if len(parts) == 0 {
		return "provider reported no errors"
	}
	return strings.Join(parts, "; ")
}

func idParam(v int64) string {
	return strconv.FormatInt(v, 10)
}
