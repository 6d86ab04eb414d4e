// Package api is the single chokepoint for every request the careerdesk
// client sends to the portal backend.
//
// Each call goes through a two-stage pipeline composed around a plain HTTP
// send: the outbound stage attaches the stored bearer credential (when one
// exists) and a request id; the inbound stage classifies the response
// uniformly for all callers: 2xx passes the decoded payload through, 401/403
// becomes *AuthError, everything else becomes *TransportError. The client
// never mutates session state itself; authentication failures on portal
// endpoints are reported through an optional hook so the session manager can
// apply one policy in one place.
package api

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

	"careerdesk/internal/client/credstore"
	"careerdesk/internal/common"
	"careerdesk/internal/logging"

	"github.com/google/uuid"
)

const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-Id"

	// tokenLogPrefixLen bounds how much of a credential may ever reach a log
	// line.
	tokenLogPrefixLen = 6
)

// Client talks to the portal backend.
type Client struct {
	baseURL     string
	http        *http.Client
	creds       credstore.Store
	log         logging.Logger
	onAuthError func(context.Context, *AuthError)
}

// New builds a Client for the backend at baseURL. The credential store is
// consulted on every outbound request. A nil httpClient falls back to a
// default with a 15s timeout; a nil logger discards.
func New(baseURL string, httpClient *http.Client, creds credstore.Store, log logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		creds:   creds,
		log:     log,
	}
}

// SetAuthErrorHook installs the callback invoked whenever a portal call is
// classified as *AuthError. Login/register/whoami bypass the hook: their
// callers handle the outcome directly.
func (c *Client) SetAuthErrorHook(fn func(context.Context, *AuthError)) {
	c.onAuthError = fn
}

// callOpts describes one request to the pipeline.
type callOpts struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	out         any
	noAuthHook  bool
}

// errorBody is the backend's uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

// call runs the full pipeline: build, outbound transform, send, classify.
func (c *Client) call(ctx context.Context, o callOpts) error {
	req, err := c.newRequest(ctx, o)
	if err != nil {
		return &TransportError{Method: o.method, Path: o.path, Message: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		terr := &TransportError{Method: o.method, Path: o.path, Message: err.Error()}
		c.log.Error(ctx, "api transport failure", "method", o.method, "path", o.path, "error", err.Error())
		return terr
	}
	defer resp.Body.Close()

	return c.classify(ctx, resp, o)
}

// newRequest is the outbound stage: it builds the request and attaches the
// stored credential (if any) and a request id.
func (c *Client) newRequest(ctx context.Context, o callOpts) (*http.Request, error) {
	u := c.baseURL + o.path
	if len(o.query) > 0 {
		u += "?" + o.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, o.method, u, o.body)
	if err != nil {
		return nil, err
	}
	if o.contentType != "" {
		req.Header.Set("Content-Type", o.contentType)
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	// A failing credential store counts as "no credential": the request goes
	// out unauthenticated and the backend decides whether that is acceptable.
	token, err := c.creds.Read(ctx)
	if err != nil {
		c.log.Warn(ctx, "credential store unavailable, sending unauthenticated",
			"method", o.method, "path", o.path, "error", err.Error())
		token = ""
	}
	if token != "" {
		req.Header.Set(AuthorizationHeader, "Bearer "+token)
	}

	c.log.Debug(ctx, "api request",
		"method", o.method, "path", o.path, "request_id", requestID,
		"token", common.TruncateSecret(token, tokenLogPrefixLen))
	return req, nil
}

// classify is the inbound stage.
func (c *Client) classify(ctx context.Context, resp *http.Response, o callOpts) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if o.out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(o.out); err != nil {
			return &TransportError{
				Method: o.method, Path: o.path, Status: resp.StatusCode,
				Message: fmt.Sprintf("decoding response: %v", err),
			}
		}
		return nil
	}

	msg := readErrorMessage(resp)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		aerr := &AuthError{Status: resp.StatusCode, Message: msg}
		c.log.Warn(ctx, "api authentication failure",
			"method", o.method, "path", o.path, "status", resp.StatusCode)
		if !o.noAuthHook && c.onAuthError != nil {
			c.onAuthError(ctx, aerr)
		}
		return aerr
	}

	terr := &TransportError{Method: o.method, Path: o.path, Status: resp.StatusCode, Message: msg}
	c.log.Error(ctx, "api failure",
		"method", o.method, "path", o.path, "status", resp.StatusCode, "message", msg)
	return terr
}

// readErrorMessage extracts the backend-provided message from a failure
// response, falling back to the generic status text.
func readErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(body) > 0 {
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.Error != "" {
			return eb.Error
		}
	}
	return http.StatusText(resp.StatusCode)
}

// jsonBody marshals v for use as a request body.
func jsonBody(v any) (io.Reader, error) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf, nil
}
