package chunker

import "unicode/utf8"

// CharsPerToken approximates English text at about four characters a token.
const CharsPerToken = 4

// TargetChars converts a token budget into characters.
func TargetChars(tokens int) int {
	return tokens * CharsPerToken
}

// EstimateTokens gives a rough token count for text.
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return max(1, n/CharsPerToken)
}
