package aibackend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/WeakCookie/fit-path-hackathon/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	suggestionPath = "/daily-training-suggestion"
	healthPath     = "/health"
)

// Client talks to the AI server producing research based training suggestions.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      SuggestionCache
	cacheTTL   time.Duration
}

// NewHTTPClient returns an http client with a traced transport.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func NewClient(baseURL string, httpClient *http.Client, cache SuggestionCache, cacheTTL time.Duration) *Client {
	if cache == nil {
		cache = NoopCache{}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func (c *Client) DailyTrainingSuggestion(ctx context.Context, suggestionReq SuggestionRequest) (_ *SuggestionResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aiBackend.dailyTrainingSuggestion")
	defer tracing.EndSpanWithErrCheck(span, &err)

	reqBody, err := json.Marshal(suggestionReq)
	if err != nil {
		return nil, fmt.Errorf("marshal suggestion request: %w", err)
	}

	cacheKey := CacheKey(reqBody)
	if cached, err := c.cache.Get(ctx, cacheKey); err == nil {
		suggestionResp := &SuggestionResponse{}
		if err := json.Unmarshal(cached, suggestionResp); err == nil {
			span.SetAttributes(attribute.Bool("suggestion.from-cache", true))
			log.Tracef("found ai suggestion in cache: %s", cacheKey)
			return suggestionResp, nil
		} else {
			log.Errorf("failed to unmarshal cached ai suggestion %s: %s", cacheKey, err)
		}
	} else if !errors.Is(err, ErrCacheMiss) {
		log.Warnf("get ai suggestion from cache: %s", err)
	}
	span.SetAttributes(attribute.Bool("suggestion.from-cache", false))

	url := c.baseURL + suggestionPath
	log.Debugf("calling ai server: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	respBytes, err := c.do(req)
	if err != nil {
		return nil, err
	}

	suggestionResp := &SuggestionResponse{}
	if err := json.Unmarshal(respBytes, suggestionResp); err != nil {
		return nil, fmt.Errorf("unmarshal ai suggestion response: %w", err)
	}
	span.SetAttributes(attribute.Int("suggestion.paper-id", suggestionResp.PaperID))

	if err := c.cache.Set(ctx, cacheKey, respBytes, c.cacheTTL); err != nil {
		log.Errorf("failed to cache ai suggestion %s: %s", cacheKey, err)
	} else {
		log.Debugf("ai suggestion cached: %s", cacheKey)
	}

	return suggestionResp, nil
}

// TestConnection checks the health endpoint of the AI server.
func (c *Client) TestConnection(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aiBackend.testConnection")
	defer tracing.EndSpanWithErrCheck(span, &err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	_, err = c.do(req)
	return err
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrServerUnreachable, c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ai server response: %w", err)
	}
	return respBytes, nil
}
