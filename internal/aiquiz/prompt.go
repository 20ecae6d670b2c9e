package aiquiz

import (
	"fmt"
	"strings"
)

const questionCount = 10

const systemInstruction = `You are an expert quiz generator. Return ONLY raw JSON.`

// BuildPrompt asks for exactly 10 four-option items as a raw JSON array.
// Document context, when present, is embedded before the instruction so it
// acts as the primary source for the questions.
func BuildPrompt(topic, documentContext string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a quiz about %q.", topic)

	if doc := strings.TrimSpace(documentContext); doc != "" {
		fmt.Fprintf(&b, "\n\nUse the following DOCUMENT CONTENT as the primary source for the questions:\n\n--- BEGIN DOCUMENT CONTENT ---\n%s\n--- END DOCUMENT CONTENT ---\n\n", documentContext)
	}

	fmt.Fprintf(&b, `
Create %d multiple choice questions.
Return the response ONLY as a valid JSON array with this structure:
[
    {
        "question": "Question text",
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "correctAnswer": 0
    }
]
"correctAnswer" is the zero-based index of the correct option (0-3).
Do not include any markdown formatting (like %s). Just the raw JSON array.
`, questionCount, "```json")

	return b.String()
}
