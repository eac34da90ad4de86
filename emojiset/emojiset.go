// Package emojiset provides the default emoji classification table used
// by the lexical analyzer. The analyzer itself only sees a predicate,
// so alternative tables can be swapped in without touching it.
package emojiset

// Default reports whether r falls in one of the common emoji blocks.
func Default(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF, // symbols and pictographs
		r >= 0x1F600 && r <= 0x1F64F, // emoticons
		r >= 0x1F680 && r <= 0x1F6FF, // transport and map
		r >= 0x1F900 && r <= 0x1F9FF, // supplemental symbols
		r >= 0x1FA70 && r <= 0x1FAFF, // extended symbols
		r >= 0x2600 && r <= 0x26FF,   // miscellaneous symbols
		r >= 0x2700 && r <= 0x27BF,   // dingbats
		r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	}
	return false
}
