package domain

import (
	"testing"
	"time"
)

func TestUsageReport_Line(t *testing.T) {
	t.Parallel()

	moscow := time.FixedZone("MSK", 3*60*60)
	// 21:30 UTC = 00:30 следующего дня по Москве
	now := time.Date(2026, 2, 28, 21, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entries []UsageEntry
		want    string
		empty   bool
	}{
		{
			name:  "no entries",
			want:  "2026-03-01: ",
			empty: true,
		},
		{
			name:    "single entry",
			entries: []UsageEntry{{ChatID: 1, Label: UsageLabel("ann", "Ann"), Count: 2}},
			want:    "2026-03-01: User ann with name Ann (chatId - 1) has performed 2 requests\n",
		},
		{
			name: "entries joined in given order",
			entries: []UsageEntry{
				{ChatID: 2, Label: UsageLabel("bob", "Bob"), Count: 0},
				{ChatID: 1, Label: UsageLabel("", "Ann"), Count: 5},
			},
			want: "2026-03-01: User bob with name Bob (chatId - 2) has performed 0 requests\n" +
				", User  with name Ann (chatId - 1) has performed 5 requests\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := NewUsageReport(now, moscow, tt.entries)
			if got := report.Line(); got != tt.want {
				t.Fatalf("Line() = %q, want %q", got, tt.want)
			}
			if report.IsEmpty() != tt.empty {
				t.Fatalf("IsEmpty() = %v, want %v", report.IsEmpty(), tt.empty)
			}
		})
	}
}

func TestSendOutcome_Delivered(t *testing.T) {
	t.Parallel()

	if !SendOutcomeMarkdown.Delivered() || !SendOutcomeFallback.Delivered() {
		t.Fatal("markdown and fallback must count as delivered")
	}
	if SendOutcomeFailed.Delivered() {
		t.Fatal("failed must not count as delivered")
	}
}
