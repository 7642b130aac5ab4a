package client

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

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/dmitrijs2005/carstorage/internal/logging"
	"github.com/google/uuid"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client, which has no timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient returns a client for the API rooted at baseURL. tokens may be
// nil, in which case every request is anonymous.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *HTTPClient) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// Do sends one request and decodes a 2xx JSON body into out when out is not
// nil.
func (c *HTTPClient) Do(ctx context.Context, method, path string, opts RequestOptions, out any) error {
	op := method + " " + path

	target := c.baseURL + path
	if len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}

	var body io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	if opts.Auth {
		if v := common.BearerToken(c.token()); v != "" {
			req.Header.Set(common.AuthorizationHeaderName, v)
		}
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func newHTTPError(status int, data []byte) *HTTPError {
	e := &HTTPError{StatusCode: status, Message: fallbackMessage}
	var eb errorBody
	if json.Unmarshal(data, &eb) == nil {
		switch {
		case eb.Error != "":
			e.Message = eb.Error
		case eb.Message != "":
			e.Message = eb.Message
		}
	}
	return e
}

// list fetches a collection. A 2xx body that is not a JSON array yields an
// empty slice.
func list[T any](ctx context.Context, c *HTTPClient, path string, opts RequestOptions) ([]T, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, path, opts, &raw); err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return []T{}, nil
	}
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", path, err)
	}
	return items, nil
}

// asAuthError turns a rejected login or registration into an *AuthError.
func asAuthError(err error) error {
	var he *HTTPError
	if errors.As(err, &he) && he.StatusCode >= 400 && he.StatusCode < 500 {
		return &AuthError{Err: he}
	}
	return err
}
