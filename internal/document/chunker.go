package document

import (
	"regexp"
	"strings"
)

// DefaultChunkSize is the maximum chunk length in characters.
const DefaultChunkSize = 2000

var (
	spaceRunRe = regexp.MustCompile(`[ \t]+`)
	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes extracted document text: CRLF to LF, runs of
// spaces/tabs collapsed to one space, runs of blank lines capped at one,
// surrounding whitespace trimmed. Paragraph breaks survive.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Chunk splits text into segments of at most maxSize characters, cutting
// preferentially at the last paragraph break (\n\n) inside the window,
// then at the last newline, then hard at maxSize. Chunks are trimmed and
// never empty. Lengths are measured in runes, not bytes.
func Chunk(text string, maxSize int) []string {
	runes := []rune(text)
	if len(runes) <= maxSize {
		return []string{strings.TrimSpace(text)}
	}

	var chunks []string
	pos := 0

	for pos < len(runes) {
		end := pos + maxSize

		// Last chunk: take everything remaining.
		if end >= len(runes) {
			appendChunk(&chunks, runes[pos:])
			break
		}

		window := runes[pos:end]

		if cut := lastRun(window, '\n', 2); cut != -1 {
			appendChunk(&chunks, runes[pos:pos+cut])
			pos += cut + 2
			continue
		}

		if cut := lastRun(window, '\n', 1); cut != -1 {
			appendChunk(&chunks, runes[pos:pos+cut])
			pos += cut + 1
			continue
		}

		// No break point in the window: hard cut at exactly maxSize.
		appendChunk(&chunks, window)
		pos = end
	}

	return chunks
}

// lastRun returns the index of the last occurrence of n consecutive c
// runes in window, or -1.
func lastRun(window []rune, c rune, n int) int {
	for i := len(window) - n; i >= 0; i-- {
		match := true
		for j := 0; j < n; j++ {
			if window[i+j] != c {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func appendChunk(chunks *[]string, runes []rune) {
	chunk := strings.TrimSpace(string(runes))
	if chunk != "" {
		*chunks = append(*chunks, chunk)
	}
}
