package intake

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
)

// Form holds submitted values keyed by form field name. Single-valued fields
// use the first value; multi-select fields use all of them.
type Form map[string][]string

// Set replaces the values of a field.
func (f Form) Set(name string, values ...string) {
	f[name] = values
}

// Add appends a value to a field.
func (f Form) Add(name, value string) {
	f[name] = append(f[name], value)
}

// Get returns the first value of a field.
func (f Form) Get(name string) string {
	return first(f[name])
}

// Normalize builds a UserProfile from form values. It never fails: absent
// fields become empty or zero and unparseable numbers become nil.
func Normalize(form Form) domain.UserProfile {
	p := domain.UserProfile{}
	for _, field := range Fields {
		field.assign(&p, form[field.Name])
	}
	return p
}

// FormFromProfile is the inverse of Normalize, used to pre-fill the form from
// a saved profile.
func FormFromProfile(p *domain.UserProfile) Form {
	form := Form{}
	for _, field := range Fields {
		if v := field.read(p); len(v) > 0 {
			form[field.Name] = v
		}
	}
	return form
}

// ParseLines splits multi-line text on newlines and drops blank lines.
// A trailing carriage return is removed; otherwise lines are kept as typed.
func ParseLines(text string) []string {
	lines := []string{}
	if text == "" {
		return lines
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseLeadingInt reads an optionally signed integer prefix after leading
// whitespace, ignoring anything that follows ("12 hours" -> 12, "10.5" -> 10).
// It returns nil when no digits lead the text.
func ParseLeadingInt(s string) *int {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

func collectFocusAreas(values []string) []domain.FocusArea {
	areas := []domain.FocusArea{}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		areas = append(areas, domain.FocusArea(v))
	}
	return areas
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
