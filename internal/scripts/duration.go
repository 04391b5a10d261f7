package scripts

import (
	"strconv"
	"strings"
)

// defaultTargetSeconds is used when a target length cannot be parsed.
const defaultTargetSeconds = 60

// ParseTargetLength converts a free-form target length into whole seconds.
// Accepted forms: a bare number ("90"), a seconds label ("90 seconds",
// "90s"), and a minutes label ("2 minutes", "2m"). Anything unparseable or
// non-positive yields the 60 second default rather than an error.
func ParseTargetLength(value string) int {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	if len(fields) == 0 {
		return defaultTargetSeconds
	}

	number := fields[0]
	unit := ""
	if len(fields) > 1 {
		unit = fields[1]
	} else {
		// Allow a glued suffix such as "90s" or "2m".
		trimmed := strings.TrimRight(number, "smh")
		unit = number[len(trimmed):]
		number = trimmed
	}

	seconds, err := strconv.Atoi(number)
	if err != nil || seconds <= 0 {
		return defaultTargetSeconds
	}

	switch {
	case unit == "" || strings.HasPrefix(unit, "s"):
		return seconds
	case strings.HasPrefix(unit, "m"):
		return seconds * 60
	default:
		return defaultTargetSeconds
	}
}

// allocateDurations splits a total duration across the four sections at
// fixed proportions (intro 20%, body 50%, transition 10%, outro 20%),
// rounding down and folding any remainder into the body so the section sum
// equals the total exactly.
func allocateDurations(total int) (intro, body, transition, outro int) {
	intro = total * 20 / 100
	body = total * 50 / 100
	transition = total * 10 / 100
	outro = total * 20 / 100
	body += total - (intro + body + transition + outro)
	return intro, body, transition, outro
}
