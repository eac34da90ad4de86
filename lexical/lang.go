package lexical

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"chatscope/domain"
)

// langSample caps how much text feeds the language detector; a few
// hundred messages are plenty for a reliable guess.
const langSample = 200

// DetectLanguage guesses the dominant chat language so the caller can
// pick a matching stopword list. Returns the ISO 639-1 code, empty when
// there is nothing to detect.
func DetectLanguage(messages []domain.Message) string {
	if len(messages) == 0 {
		return ""
	}
	sample := messages
	if len(sample) > langSample {
		sample = sample[:langSample]
	}
	var sb strings.Builder
	for _, msg := range sample {
		sb.WriteString(msg.Content)
		sb.WriteByte(' ')
	}
	info := whatlanggo.Detect(sb.String())
	return info.Lang.Iso6391()
}
