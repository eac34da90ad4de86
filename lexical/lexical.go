// Package lexical tokenizes message text into emoji and word frequency
// tables. The emoji classification table and the stopword set are
// supplied by the caller; this package only applies them.
package lexical

import (
	"sort"
	"strings"
	"unicode"

	"chatscope/domain"
	cserrors "chatscope/errors"
)

// DefaultTopEmojis is how many emoji the frequency table reports.
const DefaultTopEmojis = 10

// Classifier decides whether a single rune counts as an emoji.
type Classifier func(r rune) bool

// EmojiCount is one row of the emoji frequency table.
type EmojiCount struct {
	Emoji string
	Count int
}

// WordCount is one row of the word frequency table.
type WordCount struct {
	Word  string
	Count int
}

// TopEmojis scans every message rune by rune, counts the runes the
// classifier accepts, and returns the limit most frequent. Ties keep
// first-encountered order. Returns ErrNoEmojis when nothing matched.
func TopEmojis(messages []domain.Message, isEmoji Classifier, limit int) ([]EmojiCount, error) {
	counts := make(map[rune]int)
	firstSeen := make(map[rune]int)
	order := 0

	for _, msg := range messages {
		for _, r := range msg.Content {
			if !isEmoji(r) {
				continue
			}
			if _, ok := counts[r]; !ok {
				firstSeen[r] = order
				order++
			}
			counts[r]++
		}
	}
	if len(counts) == 0 {
		return nil, cserrors.ErrNoEmojis
	}

	rows := make([]EmojiCount, 0, len(counts))
	runes := make([]rune, 0, len(counts))
	for r := range counts {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool {
		if counts[runes[i]] != counts[runes[j]] {
			return counts[runes[i]] > counts[runes[j]]
		}
		return firstSeen[runes[i]] < firstSeen[runes[j]]
	})
	for _, r := range runes {
		rows = append(rows, EmojiCount{Emoji: string(r), Count: counts[r]})
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// Corpus lower-cases every message, splits on whitespace, keeps purely
// alphabetic tokens outside the stopword set, and joins the survivors
// with single spaces. The result feeds the word-cloud collaborator.
func Corpus(messages []domain.Message, stopwords map[string]struct{}) string {
	var sb strings.Builder
	for _, msg := range messages {
		for _, token := range strings.Fields(strings.ToLower(msg.Content)) {
			if !alphabetic(token) {
				continue
			}
			if _, stop := stopwords[token]; stop {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(token)
		}
	}
	return sb.String()
}

// WordFrequencies counts tokens of an already-filtered corpus. Ties are
// broken alphabetically so the table is stable.
func WordFrequencies(corpus string, limit int) []WordCount {
	freq := make(map[string]int)
	for _, token := range strings.Fields(corpus) {
		freq[token]++
	}
	if len(freq) == 0 {
		return nil
	}

	rows := make([]WordCount, 0, len(freq))
	for word, count := range freq {
		rows = append(rows, WordCount{Word: word, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Word < rows[j].Word
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func alphabetic(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
