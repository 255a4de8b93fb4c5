package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
	"github.com/admin/tg-bots/gpt-bot/internal/pkg/logger"
)

type recordingBot struct {
	got []domain.IncomingMessage
}

func (r *recordingBot) HandleMessage(ctx context.Context, message domain.IncomingMessage) error {
	r.got = append(r.got, message)
	return nil
}

type fakeClient struct {
	plain       []string
	markdown    []string
	markdownErr error
}

func (f *fakeClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	f.plain = append(f.plain, text)
	return nil
}

func (f *fakeClient) SendMessageWithMarkdown(ctx context.Context, chatID int64, text string) error {
	if f.markdownErr != nil {
		return f.markdownErr
	}
	f.markdown = append(f.markdown, text)
	return nil
}

func strPtr(s string) *string { return &s }

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "/clear", want: "clear"},
		{in: "/clear@gpt_bot", want: "clear"},
		{in: "/clear extra", want: "clear"},
		{in: "/get-user-statistics now", want: "get-user-statistics"},
		{in: "/get-user-statistics@gpt_bot extra", want: "get-user-statistics"},
	}
	for _, tt := range tests {
		if got := ParseCommand(tt.in); got != tt.want {
			t.Errorf("ParseCommand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestService_HandleUpdateRouting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		update      *domain.Update
		wantCalls   int
		wantCommand string
		wantErr     bool
	}{
		{name: "nil update", update: nil, wantErr: true},
		{name: "no message", update: &domain.Update{UpdateID: 1}},
		{
			name: "bot sender ignored",
			update: &domain.Update{UpdateID: 2, Message: &domain.Message{
				From: &domain.TelegramUser{ID: 1, IsBot: true},
				Chat: &domain.Chat{ID: 10},
				Text: strPtr("hi"),
			}},
		},
		{
			name: "non-text ignored",
			update: &domain.Update{UpdateID: 3, Message: &domain.Message{
				From: &domain.TelegramUser{ID: 1},
				Chat: &domain.Chat{ID: 10},
			}},
		},
		{
			name: "plain text",
			update: &domain.Update{UpdateID: 4, Message: &domain.Message{
				From: &domain.TelegramUser{ID: 1, FirstName: "Ann"},
				Chat: &domain.Chat{ID: 10},
				Text: strPtr("hello"),
			}},
			wantCalls: 1,
		},
		{
			name: "command with bot mention",
			update: &domain.Update{UpdateID: 5, Message: &domain.Message{
				From: &domain.TelegramUser{ID: 1},
				Chat: &domain.Chat{ID: 10},
				Text: strPtr("/clear@gpt_bot"),
			}},
			wantCalls:   1,
			wantCommand: "clear",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bot := &recordingBot{}
			svc := New(bot, &fakeClient{}, logger.Discard())

			err := svc.HandleUpdate(context.Background(), tt.update)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HandleUpdate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(bot.got) != tt.wantCalls {
				t.Fatalf("bot calls = %d, want %d", len(bot.got), tt.wantCalls)
			}
			if tt.wantCalls == 1 {
				if bot.got[0].ChatID != 10 || bot.got[0].UpdateID != tt.update.UpdateID {
					t.Fatalf("incoming = %+v", bot.got[0])
				}
				if bot.got[0].Command != tt.wantCommand {
					t.Fatalf("command = %q, want %q", bot.got[0].Command, tt.wantCommand)
				}
			}
		})
	}
}

func TestService_SendMessageWithMarkdownWrapsError(t *testing.T) {
	t.Parallel()

	apiErr := errors.New("can't parse entities")
	client := &fakeClient{markdownErr: apiErr}
	svc := New(&recordingBot{}, client, logger.Discard())

	if err := svc.SendMessageWithMarkdown(context.Background(), 1, "*x"); !errors.Is(err, apiErr) {
		t.Fatalf("SendMessageWithMarkdown() error = %v, want wrapped %v", err, apiErr)
	}
	if err := svc.SendMessage(context.Background(), 1, "x"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if len(client.plain) != 1 || client.plain[0] != "x" {
		t.Fatalf("plain = %v", client.plain)
	}
}
