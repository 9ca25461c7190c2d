package llm

// RoughEstimateTokens approximates the token count of text, never below 1.
func RoughEstimateTokens(text string) int {
	avgCharsPerToken := 3.0
	tokens := int(float64(len([]rune(text))) / avgCharsPerToken)
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}

func RoughEstimateTranscriptTokens(messages []Message) int {
	total := 0
	for _, msg := range messages {
		total += RoughEstimateTokens(msg.Content)
	}
	return total
}
