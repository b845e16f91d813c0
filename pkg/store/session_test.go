package store

import (
	"fmt"
	"testing"
)

func TestAppendCountsUserMessages(t *testing.T) {
	sess := NewSession("s1", Contact{Name: "Ada"}, "be helpful")

	sess.Append(Message{Role: RoleAssistant, Content: "hello"})
	sess.Append(Message{Role: RoleUser, Content: "hi"})
	sess.Append(Message{Role: RoleAssistant, Content: "how can I help?"})
	sess.Append(Message{Role: RoleUser, Content: "question"})

	if sess.UserMessageCount != 2 {
		t.Errorf("UserMessageCount = %d, want 2", sess.UserMessageCount)
	}
	if len(sess.History) != 4 {
		t.Errorf("len(History) = %d, want 4", len(sess.History))
	}
}

func TestWindowedHistory(t *testing.T) {
	tests := []struct {
		name       string
		transcript int
		maxRecent  int
		wantLen    int
		wantFirst  string
	}{
		{"under window", 3, 10, 4, "sys"},
		{"exactly window", 10, 10, 11, "sys"},
		{"over window", 25, 10, 11, "sys"},
		{"window of one", 5, 1, 2, "sys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := NewSession("s1", Contact{}, "sys")
			for i := 0; i < tt.transcript; i++ {
				sess.Append(Message{Role: RoleUser, Content: fmt.Sprintf("m%d", i)})
			}

			window := sess.WindowedHistory(tt.maxRecent)

			if len(window) != tt.wantLen {
				t.Fatalf("len(window) = %d, want %d", len(window), tt.wantLen)
			}
			if window[0].Role != RoleSystem || window[0].Content != tt.wantFirst {
				t.Errorf("window[0] = %+v, want system message", window[0])
			}
			// The tail of the window is the most recent transcript message.
			last := window[len(window)-1]
			wantLast := fmt.Sprintf("m%d", tt.transcript-1)
			if last.Content != wantLast {
				t.Errorf("last window message = %q, want %q", last.Content, wantLast)
			}
		})
	}
}

func TestWindowedHistoryReturnsCopy(t *testing.T) {
	sess := NewSession("s1", Contact{}, "sys")
	sess.Append(Message{Role: RoleUser, Content: "original"})

	window := sess.WindowedHistory(10)
	window[1].Content = "mutated"

	if sess.History[0].Content != "original" {
		t.Error("mutating the window must not touch the transcript")
	}
}
