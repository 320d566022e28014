package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Client is a Store backed by a habit sync service over HTTP. The service
// keeps one document per user at users/<id>/documents/habits and wraps it
// Firestore style: the serialized document nests under
// fields.state.stringValue next to a server stamped updateTime.
type Client struct {
	base   string
	header http.Header
	client *http.Client
}

// NewClient returns a client for the service at base, sending header (the
// session authentication headers) with every request.
func NewClient(base string, header http.Header) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		header: header,
		client: new(http.Client),
	}
}

func (c *Client) addr(userID string) string {
	return fmt.Sprintf("%s/users/%s/documents/habits", c.base, url.PathEscape(userID))
}

func (c *Client) newRequest(ctx context.Context, method, addr string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, addr, body)
	if err != nil {
		return nil, err
	}
	for key, values := range c.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	return req, nil
}

func (c *Client) Fetch(ctx context.Context, userID string) ([]byte, time.Time, bool, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.addr(userID), nil)
	if err != nil {
		return nil, time.Time{}, false, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, time.Time{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, time.Time{}, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, time.Time{}, false, fmt.Errorf("cannot http GET %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return nil, time.Time{}, false, fmt.Errorf("cannot decode response for user %q: %w", userID, err)
	}
	state, err := pluckString(jobj, "$.fields.state.stringValue")
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("unexpected document envelope: %w", err)
	}
	// A missing or malformed update time is tolerated, the state matters more.
	var updatedAt time.Time
	if ts, err := pluckString(jobj, "$.updateTime"); err == nil {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			updatedAt = t
		}
	}
	return []byte(state), updatedAt, true, nil
}

func (c *Client) Upsert(ctx context.Context, userID string, state []byte, updatedAt time.Time) error {
	// The service stamps its own update time, updatedAt is not sent.
	envelope := map[string]any{
		"fields": map[string]any{
			"state": map[string]any{"stringValue": string(state)},
		},
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("cannot encode envelope: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPatch, c.addr(userID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("cannot http PATCH %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	return nil
}

// pluckString extracts a string value at path from parsed JSON.
func pluckString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: not a string: %v", path, jval)
	}
	return s, nil
}

var _ Store = (*Client)(nil)
