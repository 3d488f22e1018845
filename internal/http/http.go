// Package http provides a wrapper around the retryablehttp.Client
// for making HTTP requests with retry capabilities.
package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const maxErrorBody = 4 << 10

type HTTPDoer interface {
	Do(*retryablehttp.Request) (*http.Response, error)
}

type HTTP struct {
	*retryablehttp.Client
}

var _ HTTPDoer = (*retryablehttp.Client)(nil)

// Config tunes the retry policy of the outbound client.
type Config struct {
	Logger       *slog.Logger
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Timeout      time.Duration
}

func DefaultConfig() Config {
	return Config{
		RetryMax:     3,
		RetryWaitMin: 250 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
		Timeout:      15 * time.Second,
	}
}

func New(conf Config) *HTTP {
	client := retryablehttp.NewClient()
	client.RetryMax = conf.RetryMax
	client.RetryWaitMin = conf.RetryWaitMin
	client.RetryWaitMax = conf.RetryWaitMax
	client.HTTPClient.Timeout = conf.Timeout
	client.Logger = nil
	if conf.Logger != nil {
		client.Logger = conf.Logger
	}
	return &HTTP{
		Client: client,
	}
}

// StatusError is returned by ExpectStatus2xx for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// ExpectStatus2xx closes the body and returns a *StatusError for non-2xx responses.
func ExpectStatus2xx(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = resp.Body.Close()
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}
