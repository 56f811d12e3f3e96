package llm

import "strings"

// FirstText returns the content of the first choice, trimmed of surrounding
// whitespace. Empty responses yield "".
func FirstText(resp *ChatResponse) string {
	if resp == nil || len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
