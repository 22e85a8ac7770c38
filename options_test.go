package rockethook

import (
	"testing"
	"time"
)

func TestNewWebhookOptions(t *testing.T) {
	t.Parallel()

	opts := newWebhookOptions()

	if opts.timeout != 30*time.Second {
		t.Errorf("expected timeout=30s, got %v", opts.timeout)
	}

	if opts.requestLogger == nil {
		t.Error("expected requestLogger to be set")
	}

	if len(opts.requestHeaders) != 0 {
		t.Errorf("expected no default headers, got %v", opts.requestHeaders)
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Duration
		expected time.Duration
	}{
		{"valid", 5 * time.Second, 5 * time.Second},
		{"subsecond valid", 100 * time.Millisecond, 100 * time.Millisecond},
		{"zero ignored", 0, 30 * time.Second}, // default is 30s
		{"negative ignored", -1 * time.Second, 30 * time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newWebhookOptions()
			WithTimeout(tt.input)(opts)

			if opts.timeout != tt.expected {
				t.Errorf("expected timeout=%v, got %v", tt.expected, opts.timeout)
			}
		})
	}
}

func TestWithRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid logger", func(t *testing.T) {
		t.Parallel()

		opts := newWebhookOptions()
		logger := &NoopLogger{}
		WithRequestLogger(logger)(opts)

		if opts.requestLogger != logger {
			t.Error("expected requestLogger to be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newWebhookOptions()
		originalLogger := opts.requestLogger
		WithRequestLogger(nil)(opts)

		if opts.requestLogger != originalLogger {
			t.Error("nil logger should be ignored")
		}
	})
}

func TestWithRequestHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		header        string
		value         string
		expectIgnored bool
	}{
		{"valid header", "X-Custom", "value", false},
		{"empty header ignored", "", "value", true},
		{"whitespace header ignored", "   ", "value", true},
		{"Content-Type protected", "Content-Type", "application/json", true},
		{"content-type protected (case insensitive)", "content-type", "application/json", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newWebhookOptions()

			WithRequestHeader(tt.header, tt.value)(opts)

			if tt.expectIgnored {
				if len(opts.requestHeaders) != 0 {
					t.Errorf("expected header to be ignored, got %v", opts.requestHeaders)
				}
			} else if opts.requestHeaders[tt.header] != tt.value {
				t.Errorf("expected header %s=%s, got %s", tt.header, tt.value, opts.requestHeaders[tt.header])
			}
		})
	}
}
