package commandconfig

import (
	"regexp"
	"strings"
)

// TagPattern is the shape every FORMAT command tag must have: a letters
// prefix followed by an optional decimal suffix. Both parts are ASCII only and
// the match is anchored at the very end, so a trailing newline is rejected.
const TagPattern = `^([a-zA-Z]+)(\d*)$`

var tagRegexp = regexp.MustCompile(TagPattern)

// Tag is a parsed command tag.
type Tag struct {
	// Raw is the tag exactly as written in the configuration.
	Raw string
	// Letters is the alphabetic prefix.
	Letters string
	// Suffix is the numeric suffix in canonical form (no leading zeros,
	// "0" for zero), or "" when the tag is unnumbered.
	Suffix string
}

// ParseTag splits raw into its letters prefix and numeric suffix. It reports
// false when raw does not match TagPattern.
func ParseTag(raw string) (Tag, bool) {
	m := tagRegexp.FindStringSubmatch(raw)
	if m == nil {
		return Tag{}, false
	}
	tag := Tag{Raw: raw, Letters: m[1]}
	if m[2] != "" {
		tag.Suffix = canonicalNumber(m[2])
	}
	return tag, true
}

// canonicalNumber strips leading zeros so "007" and "7" compare equal,
// without any integer size limit.
func canonicalNumber(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// Numbered reports whether the tag carries a numeric suffix.
func (t Tag) Numbered() bool {
	return t.Suffix != ""
}

// Positive reports whether the numeric suffix is greater than zero.
func (t Tag) Positive() bool {
	return t.Numbered() && t.Suffix != "0"
}

// tagRegistry records the tags seen so far and enforces their uniqueness:
// a tag string is used once, and an unnumbered tag "T" cannot coexist with
// a numbered "T<n>" where n > 0. Suffix 0 is exempt from the conflict rule.
type tagRegistry struct {
	alpha    map[string]bool
	numbered map[string]map[string]bool
}

func newTagRegistry() *tagRegistry {
	return &tagRegistry{
		alpha:    make(map[string]bool),
		numbered: make(map[string]map[string]bool),
	}
}

// registerAlpha records an unnumbered tag.
func (r *tagRegistry) registerAlpha(command string, tag Tag) *Violation {
	if r.alpha[tag.Raw] {
		return newViolation(KindDuplicateTag, command, tag.Raw, "Tag <%s> has a duplicate entry.", tag.Raw)
	}
	for suffix := range r.numbered[tag.Letters] {
		if suffix != "0" {
			return newViolation(KindTagConflict, command, tag.Raw, "Tag name <%s> conflicts with other numbered tag(s).", tag.Raw)
		}
	}
	r.alpha[tag.Raw] = true
	return nil
}

// registerNumbered records a numbered tag.
func (r *tagRegistry) registerNumbered(command string, tag Tag) *Violation {
	suffixes := r.numbered[tag.Letters]
	if suffixes[tag.Suffix] {
		return newViolation(KindDuplicateTag, command, tag.Raw, "Tag <%s> has a duplicate entry.", tag.Raw)
	}
	if tag.Positive() && r.alpha[tag.Letters] {
		return newViolation(KindTagConflict, command, tag.Raw, "Tag <%s> conflicts with unnumbered tag <%s>.", tag.Raw, tag.Letters)
	}
	if suffixes == nil {
		suffixes = make(map[string]bool)
		r.numbered[tag.Letters] = suffixes
	}
	suffixes[tag.Suffix] = true
	return nil
}
