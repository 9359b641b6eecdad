package diagnosis

import "strings"

// Section headings the model is instructed to emit. Matching is
// case-sensitive on the first occurrence; if the model changes its headings,
// extraction silently degrades to the fallback path. This is best-effort
// text mining, not a reliable contract.
const (
	recommendationsHeading = "RECOMMENDATIONS:"
	severityHeading        = "SEVERITY ASSESSMENT:"
	followUpHeading        = "FOLLOW-UP:"
)

// Severity labels produced by Interpret.
const (
	SeverityLow      = "Low"
	SeverityModerate = "Moderate"
	SeverityHigh     = "High"
)

// FallbackRecommendations is returned when no recommendation lines could be
// extracted from the reply.
var FallbackRecommendations = []string{
	"Consult with a healthcare professional",
	"Monitor symptoms closely",
	"Follow up if symptoms worsen",
}

var (
	highKeywords = []string{"critical", "high", "severe"}
	lowKeywords  = []string{"low", "mild"}
)

// Interpretation holds the structured fields extracted from the model's
// free-text diagnosis reply.
type Interpretation struct {
	Recommendations []string
	Severity        string
	FollowUpNeeded  bool
}

// Interpret extracts a recommendation list, a coarse severity label, and a
// follow-up flag from the diagnosis reply.
//
// The follow-up flag is set when the reply mentions immediate medical
// attention or an emergency; it also defaults to true on every other path,
// so in practice it is always true. That mirrors the observed behavior of
// the system this replaces; see the interpreter tests.
func Interpret(reply string) Interpretation {
	in := Interpretation{
		Severity:       SeverityModerate,
		FollowUpNeeded: true,
	}

	if _, rest, ok := strings.Cut(reply, recommendationsHeading); ok {
		section := rest
		if before, _, ok := strings.Cut(section, severityHeading); ok {
			section = before
		}
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "-") {
				continue
			}
			in.Recommendations = append(in.Recommendations, line)
		}
	}
	if len(in.Recommendations) == 0 {
		in.Recommendations = append([]string(nil), FallbackRecommendations...)
	}

	if _, rest, ok := strings.Cut(reply, severityHeading); ok {
		section := rest
		if before, _, ok := strings.Cut(section, followUpHeading); ok {
			section = before
		}
		firstLine := strings.TrimSpace(section)
		if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
			firstLine = strings.TrimSpace(firstLine[:i])
		}
		lower := strings.ToLower(firstLine)
		switch {
		case containsAny(lower, highKeywords):
			in.Severity = SeverityHigh
		case containsAny(lower, lowKeywords):
			in.Severity = SeverityLow
		}
	}

	lowerReply := strings.ToLower(reply)
	if strings.Contains(lowerReply, "immediate medical attention") ||
		strings.Contains(lowerReply, "emergency") ||
		strings.Contains(strings.ToLower(in.Severity), "critical") {
		in.FollowUpNeeded = true
	}

	return in
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
