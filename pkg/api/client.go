package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://ubaya.xyz/react/160421125"

// envelope is the response shape shared by every endpoint:
// {"result": "success"|"error", "data": ..., "message": ...}
type envelope struct {
	Result  string          `json:"result"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// ServerError carries the server's own message for a non-success envelope.
// The message is shown to the user verbatim.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return "server reported an error"
	}
	return e.Message
}

// Client talks to the comic catalog backend. All requests are
// form-urlencoded POSTs or plain GETs returning the JSON envelope.
type Client struct {
	baseURL string
	http    *resty.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetLogger(discardLogger{})

	return &Client{baseURL: baseURL, http: c}
}

func (c *Client) SetTimeout(d time.Duration) {
	c.http.SetTimeout(d)
}

// postForm sends a form-encoded POST and decodes the envelope. A non-success
// result becomes a *ServerError; transport problems are wrapped as-is.
func (c *Client) postForm(path string, form map[string]string, out any) error {
	resp, err := c.http.R().SetFormData(form).Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return decodeEnvelope(path, resp.Body(), out)
}

func (c *Client) get(path string, query map[string]string, out any) error {
	req := c.http.R()
	if query != nil {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return decodeEnvelope(path, resp.Body(), out)
}

func decodeEnvelope(path string, body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if env.Result != "success" {
		return &ServerError{Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s data: %w", path, err)
		}
	}
	return nil
}

// resty logs retries and errors on its own; keep it quiet so the TUI owns
// the terminal.
type discardLogger struct{}

func (discardLogger) Errorf(string, ...interface{}) {}
func (discardLogger) Warnf(string, ...interface{})  {}
func (discardLogger) Debugf(string, ...interface{}) {}
