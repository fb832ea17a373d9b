package chat

import "strings"

// Keyword sets for the calendar-query heuristic. Greetings count because the
// assistant opens a greeted conversation with the user's remaining schedule.
var greetingKeywords = []string{
	"hello", "hi", "hey", "greetings",
	"good morning", "good afternoon", "good evening",
}

var calendarKeywords = []string{
	"calendar", "schedule", "events",
	"what's on", "what is on", "appointments",
	"today", "tomorrow", "this week", "next week",
}

// IsCalendarQuery classifies a message as calendar-related via a lower-cased
// substring scan. Deliberately crude: "what's on sale today" false-positives,
// and that is acceptable because the worst case is an unneeded calendar fetch.
func IsCalendarQuery(content string) bool {
	lower := strings.ToLower(content)
	for _, kw := range greetingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, kw := range calendarKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
