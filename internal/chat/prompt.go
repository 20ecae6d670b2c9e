package chat

import (
	"fmt"
	"strings"
)

// historyWindow bounds how many stored messages frame the next turn: the
// last 6 messages, i.e. 3 question/reply pairs. Older history is deliberately
// excluded from the prompt.
const historyWindow = 6

const mentorSystemInstruction = `You are an expert AI study mentor.
CRITICAL INSTRUCTION: The user has uploaded a document, and its text content is provided to you below as "DOCUMENT CONTENT".

GUIDELINES:
1. You MUST answer questions based on this "DOCUMENT CONTENT".
2. Do NOT say "I cannot open files" or "I cannot access PDFs". You HAVE the content right here.
3. Treat the provided text as the absolute truth for the document.
4. If the user asks to "summarize the pdf" or "explain this file", use the "DOCUMENT CONTENT" to do so.
5. FORMATTING RULES:
   - Use **Bold** for key terms and concepts.
   - Use Numbered Lists (1., 2., 3.) strictly when listing items, steps, or generating questions.
   - Use Bullet points for unordered lists.
   - Use ### Headers for sections if the response is long.
6. If the user asks for questions, ALWAYS number them (e.g., "Question 1:", "Question 2:").
7. Keep answers concise and helpful.`

// BuildPrompt assembles the generation prompt. Document grounding comes
// first so the model treats it as primary source material, then the bounded
// conversation window, then the question itself.
func BuildPrompt(history []*ChatMessage, message, documentContext string) string {
	var b strings.Builder

	if doc := strings.TrimSpace(documentContext); doc != "" {
		fmt.Fprintf(&b, "--- BEGIN DOCUMENT CONTENT ---\n%s\n--- END DOCUMENT CONTENT ---\n\n", documentContext)
	}

	if len(history) > 0 {
		recent := history
		if len(recent) > historyWindow {
			recent = recent[len(recent)-historyWindow:]
		}

		lines := make([]string, 0, len(recent))
		for _, msg := range recent {
			speaker := "AI Mentor"
			if msg.Role == RoleUser {
				speaker = "Student"
			}
			lines = append(lines, fmt.Sprintf("%s: %s", speaker, msg.Content))
		}
		fmt.Fprintf(&b, "PREVIOUS CONVERSATION:\n%s\n\n", strings.Join(lines, "\n"))
	}

	fmt.Fprintf(&b, "USER QUESTION: %s", message)
	return b.String()
}
