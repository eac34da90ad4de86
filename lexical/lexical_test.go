package lexical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chatscope/domain"
	"chatscope/emojiset"
	cserrors "chatscope/errors"
)

func msg(content string) domain.Message {
	return domain.Message{Sender: "Alice", Content: content, At: time.Now()}
}

func TestTopEmojis(t *testing.T) {
	req := require.New(t)

	messages := []domain.Message{
		msg("hello 😂😂 world 🔥"),
		msg("😂 again ❤"),
		msg("🔥 and one more 🔥"),
	}

	rows, err := TopEmojis(messages, emojiset.Default, DefaultTopEmojis)
	req.NoError(err)
	req.Len(rows, 3)
	// Both lead with three uses; the tie keeps first-encountered order.
	req.Equal("😂", rows[0].Emoji)
	req.Equal(3, rows[0].Count)
	req.Equal("🔥", rows[1].Emoji)
	req.Equal(3, rows[1].Count)
	req.Equal("❤", rows[2].Emoji)
	req.Equal(1, rows[2].Count)
}

func TestTopEmojis_TieKeepsFirstEncounteredOrder(t *testing.T) {
	req := require.New(t)

	rows, err := TopEmojis([]domain.Message{msg("🎉 then 🚀")}, emojiset.Default, 10)
	req.NoError(err)
	req.Len(rows, 2)
	req.Equal("🎉", rows[0].Emoji)
	req.Equal("🚀", rows[1].Emoji)
}

func TestTopEmojis_Limit(t *testing.T) {
	req := require.New(t)

	rows, err := TopEmojis([]domain.Message{msg("😀😁😂🤣😃😄😅😆😉😊😋😎")}, emojiset.Default, 10)
	req.NoError(err)
	req.Len(rows, 10)
}

func TestTopEmojis_NoneFound(t *testing.T) {
	req := require.New(t)

	_, err := TopEmojis([]domain.Message{msg("plain text only")}, emojiset.Default, 10)
	req.ErrorIs(err, cserrors.ErrNoEmojis)
}

func TestCorpus(t *testing.T) {
	req := require.New(t)

	stopwords := map[string]struct{}{"the": {}, "a": {}}
	messages := []domain.Message{
		msg("The quick BROWN fox"),
		msg("jumped over a fence2 and 42 logs"),
	}

	req.Equal("quick brown fox jumped over and logs", Corpus(messages, stopwords))
}

func TestCorpus_Empty(t *testing.T) {
	require.Empty(t, Corpus(nil, nil))
}

func TestWordFrequencies(t *testing.T) {
	req := require.New(t)

	rows := WordFrequencies("tea coffee tea water coffee tea", 2)
	req.Len(rows, 2)
	req.Equal(WordCount{Word: "tea", Count: 3}, rows[0])
	req.Equal(WordCount{Word: "coffee", Count: 2}, rows[1])
}

func TestDetectLanguage(t *testing.T) {
	req := require.New(t)

	messages := []domain.Message{
		msg("buenos días, cómo estás esta mañana"),
		msg("muy bien gracias, nos vemos esta tarde en la plaza"),
	}
	req.Equal("es", DetectLanguage(messages))
	req.Empty(DetectLanguage(nil))
}
