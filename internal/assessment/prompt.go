package assessment

import "fmt"

const mcqSystemPrompt = `You are a JSON-only API that writes high-quality multiple choice questions. You return only valid JSON, never markdown or commentary.`

// buildMCQPrompt asks for 5-10 questions in the rich shape. The override
// instruction pins every question to one difficulty when set.
func buildMCQPrompt(summary string, override Difficulty) string {
	difficultyInstruction := "Generate mixed difficulty questions (easy, medium, hard)."
	if override != "" {
		difficultyInstruction = fmt.Sprintf(`Generate ONLY %s difficulty questions.
Every MCQ must have difficulty exactly '%s'.
Do NOT mix difficulty levels.`, override, override)
	}

	return fmt.Sprintf(`Using the following summary, generate 5-10 high-quality multiple choice questions.

%s

Each MCQ must:
- Test conceptual understanding
- Have exactly 4 options
- Exactly 1 correct option
- 3 plausible but incorrect distractors
- Include difficulty label (easy, medium, hard)
- Include short explanation
- Include 1-3 concept tags representing the core idea being tested

Concept tags should be:
- Short (2-4 words)
- Concept-level (e.g., "nested loops", "time complexity", "data structures")
- Not full sentences

IMPORTANT:
- Each option must contain the full answer text
- Do NOT use placeholders like "Option A", "Option B", etc.
- Do NOT label options as A/B/C/D
- The "option" field must contain the actual answer sentence
- Do NOT repeat the same option text

Return strictly JSON format with no additional text:

{
  "mcqs": [
    {
      "question": "What is machine learning?",
      "options": [
        {"option": "A subset of artificial intelligence that enables computers to learn from data", "is_correct": true},
        {"option": "A type of computer hardware used for processing", "is_correct": false},
        {"option": "A programming language designed for data analysis", "is_correct": false},
        {"option": "A database management system for storing information", "is_correct": false}
      ],
      "difficulty": "medium",
      "explanation": "Machine learning is indeed a subset of AI that allows systems to learn and improve from experience without being explicitly programmed.",
      "concept_tags": ["artificial intelligence", "machine learning basics"]
    }
  ]
}

Summary:
%s

Return ONLY the JSON object. No markdown, no code blocks, no explanations.`, difficultyInstruction, summary)
}

// buildQuickMCQPrompt asks for exactly five questions in the plain
// options-plus-index shape.
func buildQuickMCQPrompt(text string) string {
	return fmt.Sprintf(`You are a JSON-only API. Generate exactly 5 multiple choice questions based on the following text. Return ONLY valid JSON with no additional text.

Text:
%s

Return ONLY this exact JSON structure:
{
  "mcqs": [
    {
      "question": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct_index": 0,
      "explanation": "Why this answer is correct",
      "difficulty": "easy"
    }
  ]
}

Requirements:
- Generate exactly 5 MCQs
- Each MCQ must have exactly 4 options
- correct_index must be 0, 1, 2, or 3
- difficulty must be "easy", "medium", or "hard"
- Return ONLY the JSON object. No markdown, no code blocks, no explanations.`, text)
}
