package rockethook

import (
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	timeout        time.Duration
	requestLogger  RequestLogger
	requestHeaders map[string]string
}

func newWebhookOptions() *Options {
	return &Options{
		timeout:        30 * time.Second,
		requestLogger:  &NoopLogger{},
		requestHeaders: map[string]string{},
	}
}

// WithTimeout bounds each post's network round trip. Values of zero or below
// are ignored and the default of 30 seconds is retained.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRequestLogger supplies the logger used for HTTP request and error
// logging. A nil logger is ignored and the default [NoopLogger] is retained.
func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header to every post request. Content-Type is
// owned by the payload encoding and cannot be overridden; attempts to set
// it, or an empty header name, are ignored.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") {
			return
		}

		o.requestHeaders[header] = value
	}
}
