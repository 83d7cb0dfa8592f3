package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sanjayconsultancy/visadesk/internal/platform/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// APIPath is appended to the configured origin.
const APIPath = "/api"

const tracerName = "visadesk/web/gateway"

// maxErrorBody bounds how much of a rejected response is kept.
const maxErrorBody = 1 << 20

// TokenSource returns the bearer token persisted for the caller, or "".
type TokenSource func(context.Context) string

// Recorder observes completed gateway calls.
type Recorder interface {
	ObserveGatewayRequest(operation string, outcome string, elapsed time.Duration)
}

// Config wires a Client.
type Config struct {
	// BaseURL is the backend origin, e.g. http://localhost:5000.
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Tokens     TokenSource
	Logger     *slog.Logger
	Recorder   Recorder
}

// Client issues typed REST calls against the backend.
type Client struct {
	apiURL     string
	timeout    time.Duration
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
	recorder   Recorder
	tracer     trace.Tracer
}

// New builds a Client. BaseURL is required.
func New(cfg Config) (*Client, error) {
	origin := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if origin == "" {
		return nil, fmt.Errorf("gateway base url is required")
	}
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("gateway base url %q must be an absolute origin", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.GatewayRequest
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = func(context.Context) string { return "" }
	}
	return &Client{
		apiURL:     origin + APIPath,
		timeout:    timeout,
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
		recorder:   cfg.Recorder,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

// APIURL returns the resolved API root.
func (c *Client) APIURL() string {
	return c.apiURL
}

type request struct {
	operation   string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	accept      string
}

// call runs a request and returns the open response on 2xx. The returned
// release func must be called once the body is consumed; it also ends the
// request deadline.
func (c *Client) call(ctx context.Context, in request) (*http.Response, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	endpoint := c.apiURL + in.path
	if len(in.query) > 0 {
		endpoint += "?" + in.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, in.method, endpoint, in.body)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("build %s request: %w", in.operation, err)
	}
	if in.contentType != "" {
		req.Header.Set("Content-Type", in.contentType)
	}
	accept := in.accept
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)
	if token := strings.TrimSpace(c.tokens(ctx)); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, nil, &TransportError{Operation: in.operation, Err: err}
	}
	release := func() {
		_ = resp.Body.Close()
		cancel()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		release()
		if readErr != nil {
			return nil, nil, &TransportError{Operation: in.operation, Err: readErr}
		}
		return nil, nil, newResponseError(resp, body)
	}
	return resp, release, nil
}

// instrument wraps an operation with a span, metrics and a log line.
func (c *Client) instrument(ctx context.Context, operation string, method string, path string, fn func(context.Context) error) error {
	ctx, span := c.tracer.Start(ctx, "gateway."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", APIPath+path),
		),
	)
	defer span.End()

	started := time.Now()
	err := fn(ctx)
	elapsed := time.Since(started)
	result := outcome(err)

	if status := StatusCode(err); status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
	}
	if c.recorder != nil {
		c.recorder.ObserveGatewayRequest(operation, result, elapsed)
	}
	switch result {
	case "ok":
		c.logger.DebugContext(ctx, "gateway call", "operation", operation, "elapsed", elapsed)
	case "invalid", "rejected":
		c.logger.InfoContext(ctx, "gateway call refused", "operation", operation, "status", StatusCode(err), "error", err)
	default:
		c.logger.WarnContext(ctx, "gateway call failed", "operation", operation, "outcome", result, "error", err)
	}
	return err
}

// doJSON runs a request and decodes a 2xx JSON body into out when non-nil.
func (c *Client) doJSON(ctx context.Context, in request, out any) error {
	return c.instrument(ctx, in.operation, in.method, in.path, func(ctx context.Context) error {
		resp, release, err := c.call(ctx, in)
		if err != nil {
			return err
		}
		defer release()
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &TransportError{Operation: in.operation, Err: err}
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return fmt.Errorf("%s: %w", in.operation, ErrMalformedResponse)
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("%s: %w: %w", in.operation, ErrMalformedResponse, err)
		}
		return nil
	})
}

func jsonBody(payload any) (io.Reader, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(encoded), nil
}

// userPath validates id and returns the escaped users path.
func userPath(id string, suffix string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", invalid("User id is required")
	}
	if !primitive.IsValidObjectID(id) {
		return "", invalid("User id is invalid")
	}
	return "/users/" + url.PathEscape(id) + suffix, nil
}
