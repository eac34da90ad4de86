// Package parser turns a raw chat export into typed message and call records.
//
// The export is line oriented. A well-formed line looks like
//
//	[31/12/2024, 23:59:01] Alice: happy new year
//
// Lines that do not follow the grammar (continuation lines, system notices,
// truncated exports) are dropped, never reconstructed into a previous record.
package parser

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"chatscope/domain"
)

const (
	timestampLayout = "02/01/2006, 15:04:05"

	// A bracketed timestamp always occupies the same number of bytes,
	// so the slot can be sliced without scanning.
	stampLen = len("[02/01/2006, 15:04:05]")

	senderSep = ": "
)

// Result holds the records of one parse run, in chat order.
type Result struct {
	Messages []domain.Message
	Calls    []domain.Call
	Skipped  int // lines dropped for failing the grammar or the timestamp
}

type Parser struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Parser {
	return &Parser{log: log}
}

// Parse scans the export line by line and splits matched lines into
// message and call records. Unmatched lines are counted and dropped.
// Lines are split by hand rather than through a scanner so an oversized
// line (a pasted document, say) is just one more skipped line instead of
// truncating the rest of the export.
func (p *Parser) Parse(raw string) Result {
	var res Result

	for len(raw) > 0 {
		line := raw
		if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
			line = raw[:idx]
			raw = raw[idx+1:]
		} else {
			raw = ""
		}
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		at, sender, body, ok := p.splitLine(line)
		if !ok {
			res.Skipped++
			continue
		}
		if isCallBody(body) {
			status, minutes := Normalize(body)
			res.Calls = append(res.Calls, domain.Call{
				ID:              uuid.New(),
				Initiator:       sender,
				DurationMinutes: minutes,
				Status:          status,
				At:              at,
			})
			continue
		}
		res.Messages = append(res.Messages, domain.Message{
			ID:      uuid.New(),
			Sender:  sender,
			Content: body,
			At:      at,
		})
	}

	p.log.Debug("Parse run finished",
		"messages", len(res.Messages),
		"calls", len(res.Calls),
		"skipped", res.Skipped)
	return res
}

// splitLine tokenizes one line into (timestamp, sender, body).
//
// The sender slot ends at the first ": " after the bracketed timestamp.
// A body containing ": " must not be split again, so the search is done
// once, never greedily across later colons.
func (p *Parser) splitLine(line string) (time.Time, string, string, bool) {
	if len(line) <= stampLen || line[0] != '[' || line[stampLen-1] != ']' {
		return time.Time{}, "", "", false
	}
	at, err := time.Parse(timestampLayout, line[1:stampLen-1])
	if err != nil {
		p.log.Debug("Dropping line with invalid timestamp", "err", err)
		return time.Time{}, "", "", false
	}

	rest := line[stampLen:]
	if !strings.HasPrefix(rest, " ") {
		return time.Time{}, "", "", false
	}
	rest = rest[1:]

	sep := strings.Index(rest, senderSep)
	if sep <= 0 {
		return time.Time{}, "", "", false
	}
	sender := rest[:sep]
	body := rest[sep+len(senderSep):]
	if body == "" {
		return time.Time{}, "", "", false
	}
	return at, sender, body, true
}

// isCallBody classifies a record as a call announcement.
// Any body containing the phrase qualifies, even ordinary text that
// happens to mention a video call. Known quirk of the export format,
// kept as documented behavior.
func isCallBody(body string) bool {
	return strings.Contains(body, "Video call") ||
		strings.Contains(body, "Missed video call")
}
