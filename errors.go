package rockethook

import "fmt"

// StatusTransport is the sentinel status carried by a [WebhookError] when
// the failure happened on the client side and no HTTP status is available:
// a timeout, a connection failure, or an unexpected transport error. The
// three causes share the sentinel and differ only in message text.
const StatusTransport = -1

// WebhookError is returned by [Webhook.Post] and [Webhook.QuickPost] when
// the Rocket.Chat server reports an error or the request cannot be
// completed.
type WebhookError struct {
	// Status is the HTTP status code returned by the server, or
	// [StatusTransport] for client-side failures.
	Status int

	// Message describes the failure: the error description extracted from
	// the server's JSON response, or a fixed string for client-side
	// failures.
	Message string
}

func (e *WebhookError) Error() string {
	return fmt.Sprintf("rocket.chat server error, code %d: %s", e.Status, e.Message)
}
