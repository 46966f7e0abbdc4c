// Package randomuser fetches batches of generated people from a
// randomuser.me compatible API.
package randomuser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/joefazee/countryview/internal/formatter"
	"github.com/joefazee/countryview/internal/sanitizer"
	"github.com/joefazee/countryview/internal/validator"
	"github.com/joefazee/countryview/models"
)

const (
	DefaultBaseURL = "https://randomuser.me/api/"
	DefaultResults = 100
)

// ErrTransport marks network level failures (DNS, refused connection, reset).
var ErrTransport = errors.New("randomuser: transport failure")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: Status %d", e.StatusCode)
}

// DecodeError is returned when a 2xx body is not the expected JSON document.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return "randomuser: failed to decode response: " + e.Cause.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// IsTransportOrHTTP reports whether err is a non-2xx status or a network
// failure, as opposed to any other kind of failure.
func IsTransportOrHTTP(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) || errors.Is(err, ErrTransport)
}

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the random user API
type Client struct {
	baseURL    string
	results    int
	seed       string
	httpClient HTTPDoer
	stripper   sanitizer.HTMLStripperer
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithSanitizer strips markup from every text field of fetched records.
func WithSanitizer(s sanitizer.HTMLStripperer) ClientOption {
	return func(c *Client) {
		c.stripper = s
	}
}

// NewClient creates a client from cfg. A zero Timeout means no client-side
// timeout; cancellation still flows through the request context.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: cfg.BaseURL,
		results: cfg.Results,
		seed:    cfg.Seed,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.results <= 0 {
		c.results = DefaultResults
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchUsers performs a single GET for one batch of records.
func (c *Client) FetchUsers(ctx context.Context) ([]models.UserRecord, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("randomuser: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}

	var payload usersResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	if payload.Error != "" {
		return nil, &DecodeError{Cause: errors.New(payload.Error)}
	}

	return c.toRecords(payload.Results)
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("randomuser: invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(c.results))
	if c.seed != "" {
		q.Set("seed", c.seed)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) toRecords(results []userResult) ([]models.UserRecord, error) {
	records := make([]models.UserRecord, 0, len(results))
	ids := make([]string, 0, len(results))

	for i := range results {
		record, err := c.toRecord(&results[i])
		if err != nil {
			return nil, &DecodeError{Cause: fmt.Errorf("result %d: %w", i, err)}
		}
		records = append(records, record)
		ids = append(ids, record.ID)
	}

	if !validator.NoDuplicates(ids) {
		return nil, &DecodeError{Cause: models.ErrDuplicateRecordID}
	}
	return records, nil
}

func (c *Client) toRecord(r *userResult) (models.UserRecord, error) {
	registered, err := time.Parse(time.RFC3339, r.Registered.Date)
	if err != nil {
		return models.UserRecord{}, models.ErrInvalidRegistrationDate
	}

	record := models.UserRecord{
		ID: c.clean(r.Login.UUID),
		Name: models.Name{
			First: c.clean(r.Name.First),
			Last:  c.clean(r.Name.Last),
		},
		Gender: models.Gender(c.clean(r.Gender)),
		Location: models.Location{
			Country: c.clean(r.Location.Country),
			City:    c.clean(r.Location.City),
			State:   c.clean(r.Location.State),
		},
		RegisteredAt: registered,
		Email:        c.clean(r.Email),
		Nationality:  c.clean(r.Nat),
	}
	record.Phone = formatter.NormalizePhone(c.clean(r.Phone), record.Nationality)

	if err := record.Validate(); err != nil {
		return models.UserRecord{}, err
	}
	return record, nil
}

func (c *Client) clean(s string) string {
	if c.stripper == nil {
		return s
	}
	return c.stripper.StripHTML(s)
}
