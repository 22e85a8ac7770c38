package rockethook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Fixed messages for client-side failures, all carried with
// [StatusTransport].
const (
	timeoutMessage     = "timeout while sending message to Rocket.Chat"
	connectFailMessage = "unable to connect to Rocket.Chat API"
	badResponseMessage = "not a valid API response, check your integration token"
)

// Webhook posts messages to a single Rocket.Chat incoming-webhook
// integration. It is immutable after [New] and safe for concurrent use.
type Webhook struct {
	scheme  string
	host    string
	token   string
	options *Options
	http    *resty.Client
}

// New creates a Webhook for the given server and integration token.
//
// serverURL should be a full URL with scheme, e.g.
// "https://rocketchat.example.com"; any path component is discarded. A bare
// host with no scheme is accepted for compatibility with existing callers,
// but the resulting webhook has no scheme and every post will fail with a
// transport error.
//
// No network activity happens until the first post.
func New(serverURL, token string, opts ...Option) *Webhook {
	options := newWebhookOptions()
	for _, opt := range opts {
		opt(options)
	}

	scheme, host := splitServerURL(serverURL)

	httpClient := resty.New().
		SetBaseURL(scheme + "://" + host).
		SetTimeout(options.timeout).
		SetLogger(options.requestLogger).
		SetHeaders(options.requestHeaders)

	return &Webhook{
		scheme:  scheme,
		host:    host,
		token:   token,
		options: options,
		http:    httpClient,
	}
}

// splitServerURL extracts the scheme and host authority from a server URL.
// A URL without a recognizable authority still yields a usable host: the
// leading path segment is taken as the host, so "chat.example.com" parses to
// an empty scheme and host "chat.example.com".
func splitServerURL(serverURL string) (scheme, host string) {
	u, err := url.Parse(serverURL)
	if err == nil && u.Host != "" {
		return u.Scheme, u.Host
	}
	if err == nil && u.Opaque == "" {
		host, _, _ = strings.Cut(u.Path, "/")
		return u.Scheme, host
	}
	// url.Parse found no authority: either it failed outright or it read a
	// scheme-less "host:port/path" as an opaque URL. Cut the raw string at
	// the first slash instead.
	host, _, _ = strings.Cut(serverURL, "/")
	return "", host
}

// QuickPost posts a plain text message, without building a [Message] first.
// It fails exactly as [Webhook.Post] does.
func (w *Webhook) QuickPost(ctx context.Context, text string) error {
	return w.Post(ctx, &Message{Text: text})
}

// Post sends the message to Rocket.Chat.
//
// The message is serialized as a JSON object carrying only its non-empty
// fields and submitted as the form field "payload" in a single POST to
// {scheme}://{host}/hooks/{token}, bounded by the configured timeout and
// ctx. A 200 response is a success; every failure is returned as a
// [*WebhookError]. No retries are performed on any path.
func (w *Webhook) Post(ctx context.Context, msg *Message) error {
	if w == nil {
		return errors.New("webhook is nil")
	}
	if msg == nil {
		return errors.New("message is nil")
	}

	body, err := json.Marshal(payload{
		Text:        msg.Text,
		Channel:     msg.Channel,
		IconURL:     msg.IconURL,
		Attachments: msg.Attachments,
	})
	if err != nil {
		return unexpectedError(err)
	}

	resp, err := w.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"payload": string(body)}).
		Post("/hooks/" + w.token)
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode() != http.StatusOK {
		return serverError(resp.StatusCode(), resp.Body())
	}

	return nil
}

// payload is the wire shape of one message. Fields are present only when
// non-empty; an empty message serializes to "{}".
type payload struct {
	Text        string       `json:"text,omitempty"`
	Channel     string       `json:"channel,omitempty"`
	IconURL     string       `json:"icon_url,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// transportError translates a failed round trip into a [*WebhookError]
// carrying [StatusTransport]. Timeouts and connection failures map to fixed
// messages; anything else carries the underlying error detail.
func transportError(err error) *WebhookError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &WebhookError{Status: StatusTransport, Message: timeoutMessage}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &WebhookError{Status: StatusTransport, Message: timeoutMessage}
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) {
		return &WebhookError{Status: StatusTransport, Message: connectFailMessage}
	}

	return unexpectedError(err)
}

func unexpectedError(err error) *WebhookError {
	return &WebhookError{
		Status:  StatusTransport,
		Message: "unexpected error while sending message to Rocket.Chat: " + err.Error(),
	}
}

// serverError translates a non-200 response into a [*WebhookError]. The
// body is expected to be JSON; the error description is taken from its
// "error" field, then its "message" field, then the whole body. A body that
// is not valid JSON yields a fixed message.
func serverError(status int, body []byte) *WebhookError {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &WebhookError{Status: status, Message: badResponseMessage}
	}

	if obj, ok := parsed.(map[string]any); ok {
		if v, ok := obj["error"]; ok {
			return &WebhookError{Status: status, Message: describe(v)}
		}
		if v, ok := obj["message"]; ok {
			return &WebhookError{Status: status, Message: describe(v)}
		}
	}

	return &WebhookError{Status: status, Message: strings.TrimSpace(string(body))}
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
