// Package store implements the generic client for the hosted record store
// (a Supabase project): filtered/ordered reads and insert/update/delete
// mutations against named tables over the PostgREST interface, plus the
// auth sub-service in auth.go.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const restPath = "/rest/v1/"

// Error is the decoded PostgREST error payload.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("store: %s (status %d)", e.Message, e.StatusCode)
}

// ErrNoSingleRow is the one recognized sentinel: a single-row query matched
// zero (or more than one) rows. Callers treat it as "use defaults".
var ErrNoSingleRow = &Error{Code: "PGRST116", Message: "JSON object requested, multiple (or no) rows returned"}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

type Client struct {
	baseURL   string
	apiKey    string
	userToken string
	http      *http.Client
}

// New builds the single process-wide store handle. Both the project URL and
// the public API key are required; the process cannot start without them.
func New(supabaseURL, anonKey string) (*Client, error) {
	if supabaseURL == "" {
		return nil, fmt.Errorf("store: SUPABASE_URL is required")
	}
	if anonKey == "" {
		return nil, fmt.Errorf("store: SUPABASE_ANON_KEY is required")
	}

	return &Client{
		baseURL: strings.TrimRight(supabaseURL, "/"),
		apiKey:  anonKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// WithToken returns a shallow copy that authorizes requests with a user's
// access token instead of the anon key, for user-scoped writes.
func (c *Client) WithToken(accessToken string) *Client {
	clone := *c
	clone.userToken = accessToken
	return &clone
}

// Query options. Filters render as column=eq.value pairs, ordering as
// order=column.asc|desc, matching the PostgREST query syntax.
type QueryOptions struct {
	filters []filter
	orders  []order
}

type filter struct {
	column string
	value  string
}

type order struct {
	column    string
	ascending bool
}

func NewQuery() *QueryOptions {
	return &QueryOptions{}
}

func (q *QueryOptions) Eq(column string, value any) *QueryOptions {
	q.filters = append(q.filters, filter{column: column, value: fmt.Sprint(value)})
	return q
}

func (q *QueryOptions) Order(column string, ascending bool) *QueryOptions {
	q.orders = append(q.orders, order{column: column, ascending: ascending})
	return q
}

func (q *QueryOptions) encode() url.Values {
	values := url.Values{}
	values.Set("select", "*")
	if q == nil {
		return values
	}
	for _, f := range q.filters {
		values.Set(f.column, "eq."+f.value)
	}
	if len(q.orders) > 0 {
		parts := make([]string, 0, len(q.orders))
		for _, o := range q.orders {
			dir := ".desc"
			if o.ascending {
				dir = ".asc"
			}
			parts = append(parts, o.column+dir)
		}
		values.Set("order", strings.Join(parts, ","))
	}
	return values
}

// Query runs a filtered, ordered select * against table and decodes the
// result set into dest (a pointer to a slice).
func (c *Client) Query(ctx context.Context, table string, opts *QueryOptions, dest any) error {
	endpoint := c.baseURL + restPath + table + "?" + opts.encode().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	return c.do(req, dest)
}

// QuerySingle expects exactly one matching row. Zero rows surfaces as
// ErrNoSingleRow rather than a generic failure.
func (c *Client) QuerySingle(ctx context.Context, table string, opts *QueryOptions, dest any) error {
	endpoint := c.baseURL + restPath + table + "?" + opts.encode().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.pgrst.object+json")

	return c.do(req, dest)
}

// Insert writes one or more new rows. The store assigns id and created_at.
func (c *Client) Insert(ctx context.Context, table string, rows any) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+restPath+table, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	return c.do(req, nil)
}

// Update patches the row matching id with the given mutable fields.
func (c *Client) Update(ctx context.Context, table, id string, patch any) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + restPath + table + "?id=eq." + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	return c.do(req, nil)
}

// Delete removes the row matching id.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	endpoint := c.baseURL + restPath + table + "?id=eq." + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}

	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, dest any) error {
	req.Header.Set("apikey", c.apiKey)
	if c.userToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.userToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(req, resp)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("store: decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}

func (c *Client) decodeError(req *http.Request, resp *http.Response) error {
	storeErr := &Error{StatusCode: resp.StatusCode}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(body, storeErr); err != nil || storeErr.Message == "" {
		storeErr.Message = http.StatusText(resp.StatusCode)
	}

	log.Error().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Str("code", storeErr.Code).
		Str("message", storeErr.Message).
		Msg("record store request failed")

	return storeErr
}
