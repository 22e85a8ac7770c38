package rockethook

import "testing"

func TestWebhookError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *WebhookError
		want string
	}{
		{
			name: "server status",
			err:  &WebhookError{Status: 403, Message: "invalid token"},
			want: "rocket.chat server error, code 403: invalid token",
		},
		{
			name: "transport sentinel",
			err:  &WebhookError{Status: StatusTransport, Message: timeoutMessage},
			want: "rocket.chat server error, code -1: timeout while sending message to Rocket.Chat",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
