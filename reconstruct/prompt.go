package reconstruct

import (
	"fmt"
	"strings"
)

const (
	promptPreamble = "You are a persistent AI agent. Your memory from previous sessions:"
	promptTrailer  = "Use your memory to maintain continuity. Do not ask for information you already have."
	criticalMarker = "[CRITICAL] "
)

// BuildContextPrompt assembles the system context for a query: the selected
// facts rendered as a bullet list, wrapped with a preamble describing them
// as prior-session memory and a trailer embedding the task.
//
// Critical facts are marked explicitly so the model treats them as load
// bearing. Fact content is rendered verbatim, one line per fact, in the
// selection's order. When nothing is selected the prompt is just the task.
func (e *Engine) BuildContextPrompt(task string, budget int) string {
	selected := e.Prioritize(budget)
	if len(selected) == 0 {
		return fmt.Sprintf("Task: %s", task)
	}

	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("\n\n")
	for _, f := range selected {
		b.WriteString("- ")
		if f.Critical {
			b.WriteString(criticalMarker)
		}
		b.WriteString(f.Content)
		b.WriteString("\n")
	}
	b.WriteString("\nCurrent task: ")
	b.WriteString(task)
	b.WriteString("\n\n")
	b.WriteString(promptTrailer)
	return b.String()
}
