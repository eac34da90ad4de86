package parser

import (
	"strconv"
	"strings"

	"chatscope/domain"
)

// Normalize reduces a call body to its status and duration in minutes.
//
// A body containing "Missed" is a missed call and always lasts 0 minutes,
// whatever digits it carries. For completed calls the first "<integer>
// <word>" occurrence gives the duration; a unit word starting with "hr"
// means hours, anything else is taken as minutes. No occurrence means 0.
func Normalize(body string) (domain.CallStatus, int) {
	if strings.Contains(body, "Missed") {
		return domain.CallMissed, 0
	}
	value, unit, ok := firstAmount(body)
	if !ok {
		return domain.CallCompleted, 0
	}
	if strings.HasPrefix(unit, "hr") {
		return domain.CallCompleted, value * 60
	}
	return domain.CallCompleted, value
}

// firstAmount finds the first integer immediately followed by a single
// space and a word, e.g. "23 min" or "2 hrs".
func firstAmount(body string) (int, string, bool) {
	for i := 0; i < len(body); i++ {
		if !isDigit(body[i]) {
			continue
		}
		j := i
		for j < len(body) && isDigit(body[j]) {
			j++
		}
		if j < len(body) && body[j] == ' ' {
			k := j + 1
			for k < len(body) && isWordByte(body[k]) {
				k++
			}
			if k > j+1 {
				value, err := strconv.Atoi(body[i:j])
				if err == nil {
					return value, body[j+1 : k], true
				}
			}
		}
		i = j
	}
	return 0, "", false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || isDigit(b) || b == '_'
}
