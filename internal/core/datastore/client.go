package datastore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"backoffice-api/internal/core/config"
	"backoffice-api/internal/core/httpclient"
)

// ErrRowNotFound is returned when a single-row lookup matches nothing.
var ErrRowNotFound = errors.New("row not found")

// Client talks to the hosted row store's REST API. Tables are exposed as
// /rest/v1/{table} resources; filters, ordering and limits travel as query
// parameters, mutations as JSON bodies.
type Client struct {
	// http is the HTTP client used for API requests.
	http *http.Client
	// baseURL is the store's base URL without a trailing slash.
	baseURL string
	// apiKey authenticates every request.
	apiKey string
}

// New creates a row-store client from the store configuration.
func New(cfg config.StoreConfig) *Client {
	return &Client{
		http:    httpclient.NewClient(10 * time.Second),
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
	}
}

// HealthCheck verifies the store is reachable and the key is accepted.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

// From starts a read query against the given table.
func (c *Client) From(table string) *Query {
	return &Query{
		client: c,
		table:  table,
		params: url.Values{},
	}
}

// Insert writes one or more rows to the table. rows marshals to a JSON
// object or array of objects.
func (c *Client) Insert(ctx context.Context, table string, rows interface{}) error {
	return c.mutate(ctx, http.MethodPost, table, rows, url.Values{})
}

// Update patches the given columns on every row where keyCol equals keyVal.
func (c *Client) Update(ctx context.Context, table string, patch interface{}, keyCol, keyVal string) error {
	params := url.Values{}
	params.Set(keyCol, "eq."+keyVal)
	return c.mutate(ctx, http.MethodPatch, table, patch, params)
}

// Delete removes every row where keyCol equals keyVal.
func (c *Client) Delete(ctx context.Context, table, keyCol, keyVal string) error {
	params := url.Values{}
	params.Set(keyCol, "eq."+keyVal)
	return c.mutate(ctx, http.MethodDelete, table, nil, params)
}

// Query accumulates filters for a table read and executes them.
type Query struct {
	client *Client
	table  string
	params url.Values
}

// Select restricts the returned columns, e.g. "id, name".
func (q *Query) Select(cols string) *Query {
	q.params.Set("select", cols)
	return q
}

// Eq filters rows where col equals val.
func (q *Query) Eq(col, val string) *Query {
	q.params.Add(col, "eq."+val)
	return q
}

// Ilike filters rows where col contains term, case-insensitively.
func (q *Query) Ilike(col, term string) *Query {
	q.params.Add(col, "ilike.*"+term+"*")
	return q
}

// Or filters rows matching any of the raw conditions, e.g.
// "customer_name.ilike.*smith*,order_number.ilike.*smith*".
func (q *Query) Or(conditions string) *Query {
	q.params.Set("or", "("+conditions+")")
	return q
}

// OrderBy sorts the result by col, ascending or descending.
func (q *Query) OrderBy(col string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.params.Set("order", col+"."+dir)
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", fmt.Sprintf("%d", n))
	return q
}

// Fetch executes the query and decodes the JSON array response into dest,
// which must be a pointer to a slice.
func (q *Query) Fetch(ctx context.Context, dest interface{}) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", q.client.baseURL, q.table, q.params.Encode())

	req, err := q.client.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := q.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return readError(q.table, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", q.table, err)
	}

	return nil
}

// One executes the query expecting a single row. Returns ErrRowNotFound
// when the result set is empty.
func (q *Query) One(ctx context.Context, dest interface{}) error {
	q.Limit(1)

	var rows []json.RawMessage
	if err := q.Fetch(ctx, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return ErrRowNotFound
	}

	if err := json.Unmarshal(rows[0], dest); err != nil {
		return fmt.Errorf("failed to decode %s row: %w", q.table, err)
	}

	return nil
}

// mutate executes an insert, update or delete against the table.
func (c *Client) mutate(ctx context.Context, method, table string, body interface{}, params url.Values) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s payload: %w", table, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return readError(table, resp)
	}

	return nil
}

// newRequest builds a request carrying the store's auth headers.
func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

// readError turns an error response into a wrapped error with a body snippet.
func readError(table string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
	return fmt.Errorf("store returned status %d for %s: %s", resp.StatusCode, table, string(snippet))
}
