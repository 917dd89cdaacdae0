package summarize

import (
	"fmt"
	"strings"
)

const groupSystemPrompt = `You are a careful technical summarizer. You condense content faithfully, without inventing facts, filler phrases, or repetition.`

const synthesisSystemPrompt = `You are a careful technical summarizer producing structured study material. You follow output format instructions exactly.`

// buildGroupPrompt asks for a plain-text three sentence digest of one
// chunk group.
func buildGroupPrompt(groupText string) string {
	return fmt.Sprintf(`Summarize the following content clearly.
Produce exactly 3 concise but informative sentences.
Avoid repetition.
No filler phrases.
Plain text only.

Content:
%s`, groupText)
}

// buildSynthesisPrompt asks for the labeled summary record. Concept tags
// are a single delimited line so they survive line-anchored extraction.
func buildSynthesisPrompt(groupSummaries []string) string {
	combined := strings.Join(groupSummaries, "\n\n")

	return fmt.Sprintf(`Using the following synthesized summaries, create a comprehensive final structured summary.

Respond in EXACTLY this labeled format, nothing else:

TITLE: A strong, specific title
SUMMARY: A detailed summary of 6-8 sentences covering all key points.
KEY_POINTS:
- First meaningful theme
- Second meaningful theme
CONCEPT_TAGS: Concept Name|9, Another Concept|7, Third Concept|4

Rules:
- Avoid repetition and merge overlapping ideas
- Summary must be 6-8 sentences
- KEY_POINTS must be 5-7 meaningful phrases, one per line, not placeholders
- CONCEPT_TAGS is one single line of Name|Score pairs separated by commas
- Scores are integers from 1 (minor) to 10 (central), ordered by descending score
- No markdown, no code blocks, no explanations outside the format

Synthesized summaries:
%s`, combined)
}
