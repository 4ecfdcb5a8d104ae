package chat

import (
	"fmt"
	"strings"

	"github.com/m04kA/BookingHub/internal/domain"
)

const promptIntro = `You are a helpful booking assistant for BookingHub, a platform for booking meeting rooms, conference halls, and workspaces.
Your role is to help users find and book appropriate spaces based on their needs.
Be concise and friendly. Try to understand the specific requirements like:
- Type of space needed (meeting room, conference hall, etc.)
- Number of people
- Preferred date and time
- Special requirements (AV equipment, catering, etc.)
`

// buildSystemPrompt системный промпт со списком услуг из каталога
func buildSystemPrompt(services []*domain.Service) string {
	var b strings.Builder
	b.WriteString(promptIntro)

	if len(services) == 0 {
		b.WriteString("\nThere are currently no spaces in the catalog.\n")
		return b.String()
	}

	b.WriteString("\nCurrent available spaces include:\n")
	for i, s := range services {
		fmt.Fprintf(&b, "%d. %s (%s, %d min, $%.2f)", i+1, s.Name, s.Category, s.DurationMinutes, s.Price)
		if desc := strings.TrimSpace(s.Description); desc != "" {
			fmt.Fprintf(&b, ": %s", desc)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
