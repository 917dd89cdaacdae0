package document

import (
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"space runs", "a   \t b", "a b"},
		{"blank runs capped", "a\n\n\n\nb", "a\n\nb"},
		{"trimmed", "  hello  ", "hello"},
		{"paragraph break survives", "a\n\nb", "a\n\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestChunk_SmallTextSingleChunk(t *testing.T) {
	chunks := Chunk("  hello world  ", 100)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "hello world" {
		t.Errorf("expected trimmed text, got %q", chunks[0])
	}
}

func TestChunk_PrefersParagraphBreak(t *testing.T) {
	text := strings.Repeat("a", 50) + "\n\n" + strings.Repeat("b", 100)
	chunks := Chunk(text, 80)
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	if chunks[0] != strings.Repeat("a", 50) {
		t.Errorf("first chunk should end at the paragraph break, got %q", chunks[0])
	}
}

func TestChunk_FallsBackToNewline(t *testing.T) {
	text := strings.Repeat("a", 50) + "\n" + strings.Repeat("b", 100)
	chunks := Chunk(text, 80)
	if chunks[0] != strings.Repeat("a", 50) {
		t.Errorf("first chunk should end at the newline, got %q", chunks[0])
	}
}

func TestChunk_HardCutAtMaxSize(t *testing.T) {
	text := strings.Repeat("a", 250)
	chunks := Chunk(text, 100)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != 100 || len(chunks[1]) != 100 || len(chunks[2]) != 50 {
		t.Errorf("unexpected chunk lengths: %d, %d, %d",
			len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}
}

func TestChunk_NoChunkExceedsMaxSize(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 60; i++ {
		b.WriteString(strings.Repeat("word ", 30))
		b.WriteString("\n\n")
	}
	for _, c := range Chunk(b.String(), 500) {
		if n := len([]rune(c)); n > 500 {
			t.Errorf("chunk exceeds max size: %d runes", n)
		}
		if strings.TrimSpace(c) == "" {
			t.Error("emitted empty chunk")
		}
	}
}

func TestChunk_LargeDocumentChunkCount(t *testing.T) {
	// 9000 characters at max 2000 must produce at least 5 chunks.
	text := strings.Repeat("a", 9000)
	chunks := Chunk(text, DefaultChunkSize)
	if len(chunks) < 5 {
		t.Errorf("expected at least 5 chunks, got %d", len(chunks))
	}
}

func TestChunk_RuneSafety(t *testing.T) {
	// Multi-byte runes must never be split mid-character.
	text := strings.Repeat("ü", 150)
	chunks := Chunk(text, 100)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	for _, c := range chunks {
		if strings.ContainsRune(c, '�') {
			t.Error("chunk contains replacement character")
		}
	}
	if got := len([]rune(chunks[0])); got != 100 {
		t.Errorf("expected 100 runes in first chunk, got %d", got)
	}
}
