package chat

import (
	"fmt"
	"strings"
)

// SystemPrompt is the system instruction sent with every chat turn.
const SystemPrompt = "You are a helpful medical AI assistant focused on patient communication and support. Always recommend professional medical consultation."

// BuildPrompt renders the chat prompt for one turn. History must already be
// in chronological order; it is folded into a "Recent conversation context"
// block, or omitted entirely when the session is new.
func BuildPrompt(name string, age int, gender string, medicalHistory []string, history []*Message, message string) string {
	historyText := "None reported"
	if len(medicalHistory) > 0 {
		historyText = strings.Join(medicalHistory, ", ")
	}

	var context strings.Builder
	if len(history) > 0 {
		context.WriteString("\n\nRecent conversation context:\n")
		for _, msg := range history {
			fmt.Fprintf(&context, "%s: %s\n", msg.Sender, msg.Message)
		}
	}

	return fmt.Sprintf(`You are a compassionate medical AI assistant helping patients understand their health concerns.

Patient Information:
- Name: %s
- Age: %d
- Gender: %s
- Medical History: %s

%s

Current patient message: %s

Please provide a helpful, empathetic response that:
1. Addresses their concerns professionally
2. Provides general health information when appropriate
3. Always recommends consulting healthcare professionals for medical advice
4. Asks relevant follow-up questions to better understand their condition
5. Maintains a warm, supportive tone

Remember: You are providing informational support, not medical diagnosis or treatment.`,
		name, age, gender, historyText, context.String(), message)
}
