package domain

import "testing"

func TestMessage_ToIncoming(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }

	tests := []struct {
		name string
		msg  Message
		want IncomingMessage
	}{
		{
			name: "sender overrides chat",
			msg: Message{
				From: &TelegramUser{ID: 5, FirstName: "Ann", Username: str("ann")},
				Chat: &Chat{ID: 10, Username: str("chat_ann"), FirstName: str("Chat Ann")},
				Text: str("hi"),
			},
			want: IncomingMessage{UpdateID: 7, ChatID: 10, Username: "ann", FirstName: "Ann", Text: "hi"},
		},
		{
			name: "no sender uses chat",
			msg: Message{
				Chat: &Chat{ID: 10, Username: str("chat_ann"), FirstName: str("Chat Ann")},
				Text: str("hi"),
			},
			want: IncomingMessage{UpdateID: 7, ChatID: 10, Username: "chat_ann", FirstName: "Chat Ann", Text: "hi"},
		},
		{
			name: "sender without username keeps empty",
			msg: Message{
				From: &TelegramUser{ID: 5, FirstName: "Ann"},
				Chat: &Chat{ID: 10},
			},
			want: IncomingMessage{UpdateID: 7, ChatID: 10, FirstName: "Ann"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.msg.ToIncoming(7); got != tt.want {
				t.Fatalf("ToIncoming() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
