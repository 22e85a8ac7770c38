package rockethook

// Attachment is a single rich-content attachment. Field names and values are
// passed to the server verbatim; the library does not validate them against
// the Rocket.Chat attachment schema. Commonly understood fields include
// title, title_link, text, image_url and color.
type Attachment map[string]any

// Message is the content of one outgoing chat message. The zero value is a
// valid empty message; fields may be set directly or built up incrementally
// with [Message.AppendText] and [Message.AddAttachment].
//
// A Message is not retained by [Webhook.Post] and may be reused across
// multiple posts.
type Message struct {
	// Text is the plain message body. Empty text is omitted from the
	// payload.
	Text string

	// Channel overrides the target channel or room configured on the
	// integration, e.g. "#general" or "@user".
	Channel string

	// IconURL is the URL of an avatar image displayed next to the message.
	IconURL string

	// Attachments are sent in the order they were added.
	Attachments []Attachment
}

// AppendText appends text to the message body, separated from any existing
// text by a newline. The first append sets the body with no leading
// separator.
func (m *Message) AppendText(text string) {
	m.AppendTextWith("\n", text)
}

// AppendTextWith is like [Message.AppendText] with an explicit delimiter.
func (m *Message) AppendTextWith(delimiter, text string) {
	if m.Text != "" {
		m.Text = m.Text + delimiter + text
		return
	}
	m.Text = text
}

// AddAttachment appends an attachment to the message. Attachments are never
// removed or reordered; a message may carry any number of them.
func (m *Message) AddAttachment(a Attachment) {
	m.Attachments = append(m.Attachments, a)
}
