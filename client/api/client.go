// Package api talks to the Study Buddy backend over its JSON HTTP contract.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/thatmoosee/Study-Buddy/client/config"
	"github.com/thatmoosee/Study-Buddy/util"
	"github.com/thatmoosee/Study-Buddy/util/model"

	"golang.org/x/net/publicsuffix"
)

var (
	// ErrTransport means no response was received at all.
	ErrTransport = errors.New("request failed")
	// ErrStatus means a non-2xx status without a usable error body.
	ErrStatus = errors.New("unexpected status")
	// ErrSchema means the body was not JSON or did not match the endpoint's schema.
	ErrSchema = errors.New("malformed response")
)

// ActionError carries the backend's {success: false, error} message verbatim.
type ActionError struct {
	Path    string
	Message string
}

func (e *ActionError) Error() string {
	return e.Message
}

// FieldError is returned before any request is sent when a required input
// is empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return e.Field + " required."
}

type validator interface {
	Validate() error
}

type enveloper interface {
	validator
	Envelope() model.Resp
}

type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// New builds a client that keeps the backend's session cookie between calls.
func New(cfg config.Config) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		// self-signed certificates on development backends
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Transport: tr, Jar: jar},
		timeout: cfg.RequestTimeout,
	}, nil
}

// get fetches a collection. Anything but a 2xx with a valid body is an error.
func (c *Client) get(ctx context.Context, path string, out validator) error {
	return c.read(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) read(ctx context.Context, method, path string, in any, out validator) error {
	status, body, err := c.send(ctx, method, path, in)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("%w %d from %s", ErrStatus, status, path)
	}
	if err := util.DecodeJSON(bytes.NewReader(body), out); err != nil {
		return fmt.Errorf("%w from %s: %v", ErrSchema, path, err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("%w from %s: %v", ErrSchema, path, err)
	}
	return nil
}

// act issues a mutating request. The backend answers failures with
// {success: false, error} and a 4xx, so the body is read whatever the status.
func (c *Client) act(ctx context.Context, path string, in any, out enveloper) error {
	status, body, err := c.send(ctx, http.MethodPost, path, in)
	if err != nil {
		return err
	}
	ok := status >= 200 && status <= 299

	if err := util.DecodeJSON(bytes.NewReader(body), out); err != nil {
		if !ok {
			return fmt.Errorf("%w %d from %s", ErrStatus, status, path)
		}
		return fmt.Errorf("%w from %s: %v", ErrSchema, path, err)
	}

	env := out.Envelope()
	if !env.Success {
		if env.Error == "" && !ok {
			return fmt.Errorf("%w %d from %s", ErrStatus, status, path)
		}
		return &ActionError{Path: path, Message: env.Error}
	}

	if err := out.Validate(); err != nil {
		return fmt.Errorf("%w from %s: %v", ErrSchema, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, in any) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reqBody io.Reader
	if in != nil {
		reqBody = bytes.NewReader(util.EncodeJSON(in))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		slog.Debug("api call failed", "method", method, "path", path, "error", err)
		return 0, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading %s: %v", ErrTransport, path, err)
	}

	slog.Debug("api call",
		"method", method,
		"path", path,
		"status", res.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res.StatusCode, body, nil
}

func required(value, field string) error {
	if value == "" {
		return &FieldError{Field: field}
	}
	return nil
}
