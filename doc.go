// Package rockethook posts messages to Rocket.Chat via incoming webhooks
// (a.k.a. integrations).
//
// The client wraps [github.com/go-resty/resty/v2]. Create a [Webhook] for a
// server and integration token, then post [Message] values with it. A
// Message can be created empty and filled with text and attachments before
// posting.
//
// # Basic Usage
//
//	hook := rockethook.New("https://rocketchat.example.com", token)
//
//	msg := &rockethook.Message{IconURL: "https://example.com/icon.png"}
//	msg.AppendText("First line.")
//	msg.AppendText("Second line.")
//	msg.AddAttachment(rockethook.Attachment{
//	    "title":      "Attach",
//	    "title_link": "https://example.com",
//	    "image_url":  "https://example.com/img.png",
//	})
//
//	if err := hook.Post(ctx, msg); err != nil {
//	    log.Fatal(err)
//	}
//
// For plain text there is no need to build a Message:
//
//	if err := hook.QuickPost(ctx, "Hi!"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained. A Webhook
// is immutable after New and safe for concurrent use; each post owns its own
// request and response.
//
// # Error Handling
//
// Every failed post returns a [*WebhookError] carrying the HTTP status code
// reported by the server and a descriptive message extracted from its JSON
// body. Client-side failures (timeout, connection failure, anything else
// that prevents a response) use the sentinel status [StatusTransport]; a
// timeout and a connection failure share that sentinel and differ only in
// message text. A 200 response is a success regardless of body content; the
// body is only inspected to extract an error description on non-200.
//
// Passing a nil Webhook or nil Message is a caller bug and returns a plain
// error, never a [*WebhookError].
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. The webhook URL embeds the integration token, so ensure
// your implementation redacts request URLs before persisting logs.
package rockethook
