package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"calcpad/internal/domain"
)

// HTTP talks to a widget server rooted at Base.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil client uses http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// Press sends keys to the server and returns the resulting display.
func (c *HTTP) Press(ctx context.Context, keys []string) (domain.DisplayState, error) {
	var out domain.DisplayState
	err := c.post(ctx, "/press", struct {
		Keys []string `json:"keys"`
	}{Keys: keys}, &out)
	return out, err
}

// Clear clears the server's expression.
func (c *HTTP) Clear(ctx context.Context) (domain.DisplayState, error) {
	var out domain.DisplayState
	err := c.post(ctx, "/clear", nil, &out)
	return out, err
}

// Display fetches the current display.
func (c *HTTP) Display(ctx context.Context) (domain.DisplayState, error) {
	var out domain.DisplayState
	err := c.getJSON(ctx, "/display", &out)
	return out, err
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if in != nil {
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTP) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("widget %s %s: %s: %s",
			strings.ToLower(req.Method), req.URL.Path, resp.Status, strings.TrimSpace(string(msg)))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
