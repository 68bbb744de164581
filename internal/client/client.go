// Package client talks to the queue server's REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"arcade_queue/internal/geofence"
	"arcade_queue/internal/models"
	"arcade_queue/internal/response"
	"arcade_queue/internal/snapshot"
)

const defaultHTTPTimeout = 15 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// New returns a Client for the server at baseURL. A nil httpClient gets a
// default with a timeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return nil, errors.New("client: server url is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("client: parse server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("client: server url %q needs a scheme and host", base)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{baseURL: u, http: httpClient}, nil
}

func (c *Client) Cabinets(ctx context.Context) ([]snapshot.CabinetView, error) {
	var out []snapshot.CabinetView
	err := c.do(ctx, http.MethodGet, "cabinets", nil, nil, &out)
	return out, err
}

// Cabinet fetches a single cabinet view. The API has no per-cabinet GET,
// so it filters the full list.
func (c *Client) Cabinet(ctx context.Context, id uint) (snapshot.CabinetView, error) {
	views, err := c.Cabinets(ctx)
	if err != nil {
		return snapshot.CabinetView{}, err
	}
	view, ok := snapshot.Find(views, id)
	if !ok {
		return snapshot.CabinetView{}, &APIError{
			Status:  http.StatusNotFound,
			Code:    "CABINET_NOT_FOUND",
			Message: fmt.Sprintf("cabinet %d not found", id),
		}
	}
	return view, nil
}

func (c *Client) CreateCabinet(ctx context.Context, name string) (models.Cabinet, error) {
	var out models.Cabinet
	err := c.do(ctx, http.MethodPost, "cabinets", nil, map[string]string{"name": name}, &out)
	return out, err
}

func (c *Client) RenameCabinet(ctx context.Context, id uint, name string) (models.Cabinet, error) {
	var out models.Cabinet
	err := c.do(ctx, http.MethodPut, "cabinets/"+idString(id), nil, map[string]string{"name": name}, &out)
	return out, err
}

func (c *Client) DeleteCabinet(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "cabinets/"+idString(id), nil, nil, nil)
}

func (c *Client) Reorder(ctx context.Context, cabinetID uint, newOrder []uint) error {
	body := map[string][]uint{"new_order": newOrder}
	return c.do(ctx, http.MethodPatch, "cabinets/"+idString(cabinetID)+"/reorder", nil, body, nil)
}

func (c *Client) Entries(ctx context.Context) ([]models.QueueEntry, error) {
	var out []models.QueueEntry
	err := c.do(ctx, http.MethodGet, "queue", nil, nil, &out)
	return out, err
}

func (c *Client) AddEntry(ctx context.Context, cabinetID uint, typ models.EntryType, players []string) (models.QueueEntry, error) {
	var out models.QueueEntry
	body := map[string]interface{}{
		"cabinet_id": cabinetID,
		"type":       typ,
		"players":    players,
	}
	err := c.do(ctx, http.MethodPost, "queue", nil, body, &out)
	return out, err
}

func (c *Client) DeleteEntry(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "queue/"+idString(id), nil, nil, nil)
}

func (c *Client) Cycle(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPost, "queue/"+idString(id)+"/cycle", nil, nil, nil)
}

func (c *Client) Move(ctx context.Context, id, targetCabinetID uint) error {
	body := map[string]uint{"target_cabinet_id": targetCabinetID}
	return c.do(ctx, http.MethodPost, "queue/"+idString(id)+"/move", nil, body, nil)
}

func (c *Client) UpdatePlayers(ctx context.Context, id uint, players []string) (models.QueueEntry, error) {
	var out models.QueueEntry
	body := map[string][]string{"players": players}
	err := c.do(ctx, http.MethodPatch, "queue/"+idString(id), nil, body, &out)
	return out, err
}

// Health returns nil when the server and its store answer.
func (c *Client) Health(ctx context.Context) error {
	var out response.HealthResponse
	if err := c.do(ctx, http.MethodGet, "health", nil, nil, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return fmt.Errorf("server reports %q: %s", out.Status, out.Message)
	}
	return nil
}

func (c *Client) Geofence(ctx context.Context, at geofence.Coordinate) (geofence.Decision, error) {
	var out geofence.Decision
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	err := c.do(ctx, http.MethodGet, "geofence", q, nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL.JoinPath(path)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), rd)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		response.ErrorResponse
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && (body.Code != "" || body.Message != "") {
		apiErr.Code = body.Code
		apiErr.Message = body.ErrorResponse.Message
		if body.Details != "" {
			apiErr.Message += ": " + body.Details
		}
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}
	return apiErr
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
