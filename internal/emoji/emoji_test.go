package emoji

import "testing"

func TestGetEmoji(t *testing.T) {
	defer SetEmojiDisabled(false)

	tests := []struct {
		key      string
		disabled bool
		want     string
	}{
		{"channel", false, "📺"},
		{"channel", true, "[CH]"},
		{"views", true, "[VIEWS]"},
		{"error", false, "❌"},
		{"does-not-exist", false, "[?]"},
		{"does-not-exist", true, "[?]"},
	}

	for _, tt := range tests {
		SetEmojiDisabled(tt.disabled)
		if got := GetEmoji(tt.key); got != tt.want {
			t.Errorf("GetEmoji(%q) disabled=%v = %q, want %q", tt.key, tt.disabled, got, tt.want)
		}
	}
}

func TestSetEmojiDisabled(t *testing.T) {
	defer SetEmojiDisabled(false)

	SetEmojiDisabled(true)
	if !IsEmojiDisabled() {
		t.Error("Expected emoji to be disabled")
	}
	SetEmojiDisabled(false)
	if IsEmojiDisabled() {
		t.Error("Expected emoji to be enabled")
	}
}
