package codelab

import "fmt"

const codelabSystemPrompt = `You are a precise code analysis assistant. You follow output format instructions exactly: plain text when asked for text, a single JSON object when asked for JSON, bare code when asked for code.`

func buildExplainPrompt(code, language string) string {
	return fmt.Sprintf(`Explain the following %s code clearly and professionally.

Describe:
- What the code does
- Input/output behavior
- Main logic
- Important constructs used

Keep explanation structured in paragraphs.
Avoid markdown.
Return plain text only.

Code:
%s`, language, code)
}

func buildStepwisePrompt(code, language string) string {
	return fmt.Sprintf(`Explain the following %s code step-by-step.

Break the explanation into logical steps.

For each step:
- Describe what part of the code is executing
- Explain what it does
- Mention how data changes
- Keep explanation clear and structured

Avoid markdown.
Return plain structured text.

Code:
%s`, language, code)
}

func buildImprovementsPrompt(code, language string) string {
	return fmt.Sprintf(`Analyze the following %s code and suggest improvements.

Provide:
- Code quality improvements
- Performance suggestions
- Readability suggestions
- Best practice recommendations

Be specific.
Avoid markdown.
Return structured paragraphs.

Code:
%s`, language, code)
}

func buildComplexityPrompt(code, language string) string {
	return fmt.Sprintf(`Analyze the following %s code and determine:

1) Time complexity (Big-O notation)
2) Space complexity (Big-O notation)
3) Short justification (2-4 sentences)

Be precise.
Avoid markdown.
Return strictly in this JSON format:

{
  "time_complexity": "O(...)",
  "space_complexity": "O(...)",
  "justification": "..."
}

Code:
%s

Return ONLY the JSON object. No markdown, no code blocks, no explanations.`, language, code)
}

func buildQualityPrompt(code, language string) string {
	return fmt.Sprintf(`Evaluate the following %s code and score it on:

1) Readability (0-10)
2) Efficiency (0-10)
3) Maintainability (0-10)
4) Overall score (0-10)

Be strict but fair.

Return strictly in this JSON format:

{
  "readability": <int>,
  "efficiency": <int>,
  "maintainability": <int>,
  "overall": <int>,
  "summary": "Short 2-3 sentence justification."
}

Code:
%s

Return ONLY the JSON object. No markdown, no code blocks, no explanations.`, language, code)
}

func buildRefactorPrompt(code, language string) string {
	return fmt.Sprintf(`Improve and refactor the following %s code.

Goals:
- Improve performance if possible
- Improve readability
- Follow best practices
- Maintain same functionality

Return only the improved code.
No markdown.
No explanation.
Only code.

Original Code:
%s`, language, code)
}
