package gatekeeper

import (
	"regexp"
	"strings"
)

// Redactor strips PII from candidate text before anything downstream may see
// it. Regex-based; each category substitutes a labeled placeholder so the
// diff report shows what class of data was removed, not the data itself.
type Redactor struct{}

func NewRedactor() *Redactor { return &Redactor{} }

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	ssnPattern      = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[A-Za-z0-9_-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[A-Za-z0-9_-]+`)
	locationPattern = regexp.MustCompile(`(?i)(Location|Based in|From|Address|City|State|Country):\s*[A-Za-z\s,]+`)
	nameLinePattern = regexp.MustCompile(`(?i)^\s*(Name|Candidate):\s*.+$`)
)

var institutionNames = []string{
	"IIT", "NIT", "BITS", "IIIT", "IIM", "ISB",
	"Stanford", "MIT", "Harvard", "Cambridge", "Oxford", "Princeton",
	"Yale", "Columbia", "Berkeley", "UCLA", "Carnegie Mellon", "Caltech",
	"Georgia Tech", "Ivy League",
}

var genderedWords = []string{
	"male", "female", "he/him", "she/her", "they/them",
	"Mr.", "Mrs.", "Ms.", "Miss",
	"husband", "wife", "father", "mother",
	"son", "daughter", "maternity", "paternity",
}

var ageIndicators = []string{
	"years old", "year old", "age:", "born in", "DOB:", "date of birth",
}

var protectedClassWords = []string{
	"christian", "muslim", "hindu", "jewish", "buddhist", "sikh",
	"church", "mosque", "temple", "synagogue", "caste", "ethnicity",
}

// Redact removes PII and returns the cleaned text with per-category counts.
func (r *Redactor) Redact(text string) (string, map[string]int) {
	stats := map[string]int{
		"emails": 0, "phones": 0, "names": 0, "colleges": 0,
		"gender_refs": 0, "age_refs": 0, "locations": 0,
	}

	text = countingReplace(text, emailPattern, "[EMAIL_REDACTED]", stats, "emails")
	text = countingReplace(text, phonePattern, "[PHONE_REDACTED]", stats, "phones")
	text = ssnPattern.ReplaceAllString(text, "[SSN_REDACTED]")
	text = linkedinPattern.ReplaceAllString(text, "[LINKEDIN_REDACTED]")
	text = githubPattern.ReplaceAllString(text, "[GITHUB_REDACTED]")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if nameLinePattern.MatchString(line) {
			lines[i] = nameLinePattern.ReplaceAllString(line, "[NAME_REDACTED]")
			stats["names"]++
		}
	}
	text = strings.Join(lines, "\n")

	for _, name := range institutionNames {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name))
		if pattern.MatchString(text) {
			text = pattern.ReplaceAllString(text, "[COLLEGE_REDACTED]")
			stats["colleges"]++
		}
	}

	for _, word := range genderedWords {
		pattern := wordBoundaryPattern(word)
		if pattern.MatchString(text) {
			text = pattern.ReplaceAllString(text, "[REDACTED]")
			stats["gender_refs"]++
		}
	}

	for _, word := range ageIndicators {
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(word) + `\s*\d*`)
		if pattern.MatchString(text) {
			text = pattern.ReplaceAllString(text, "[AGE_REDACTED]")
			stats["age_refs"]++
		}
	}

	text = countingReplace(text, locationPattern, "[LOCATION_REDACTED]", stats, "locations")

	for _, word := range protectedClassWords {
		text = wordBoundaryPattern(word).ReplaceAllString(text, "[REDACTED]")
	}

	return text, stats
}

func countingReplace(text string, pattern *regexp.Regexp, placeholder string, stats map[string]int, key string) string {
	stats[key] += len(pattern.FindAllString(text, -1))
	return pattern.ReplaceAllString(text, placeholder)
}

// wordBoundaryPattern anchors a word on both sides. A trailing \b after a
// non-word character like the dot in "Mr." only matches when a word character
// follows immediately, so dot-terminated words anchor on the literal dot.
func wordBoundaryPattern(word string) *regexp.Regexp {
	expr := `(?i)\b` + regexp.QuoteMeta(word)
	if last := word[len(word)-1]; isWordByte(last) {
		expr += `\b`
	}
	return regexp.MustCompile(expr)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
