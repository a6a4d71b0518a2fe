// Package suppress implements rule suppression through ReSharper style comments.
//
//	// ReSharper disable once FieldCanBeMadeReadOnly.Local
//	// ReSharper disable FieldCanBeMadeReadOnly.Local
//	// ReSharper restore FieldCanBeMadeReadOnly.Local
//	// ReSharper disable All
package suppress

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/viant/readonly/syntax"
)

// AllRules disables every rule
const AllRules = "All"

var directiveRe = regexp.MustCompile(`ReSharper\s+(disable\s+once|disable|restore)\s+([\w.,\s]+)`)

type lineRange struct {
	start int
	end   int // 0 for a range open until the end of file
}

func (r lineRange) contains(line int) bool {
	return line >= r.start && (r.end == 0 || line <= r.end)
}

// Suppressor reports locations where a rule is disabled
type Suppressor struct {
	keyword string
	lines   map[int]bool
	ranges  []lineRange
}

// IsSuppressed reports whether the rule is disabled at loc
func (s *Suppressor) IsSuppressed(loc syntax.Location) bool {
	if s.lines[loc.Line] {
		return true
	}
	for _, r := range s.ranges {
		if r.contains(loc.Line) {
			return true
		}
	}
	return false
}

func (s *Suppressor) matches(list string) bool {
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == AllRules || item == s.keyword {
			return true
		}
	}
	return false
}

// New creates a suppressor for keyword from comments of unit
func New(unit *syntax.Unit, keyword string) *Suppressor {
	ret := &Suppressor{keyword: keyword, lines: map[int]bool{}}
	if unit == nil {
		return ret
	}
	var open *lineRange
	for _, comment := range unit.Comments {
		match := directiveRe.FindStringSubmatch(comment.Text)
		if match == nil || !ret.matches(match[2]) {
			continue
		}
		switch directive := strings.Join(strings.Fields(match[1]), " "); directive {
		case "disable once":
			if line := nextCodeLine(unit.Source, comment.Span.End); line > 0 {
				ret.lines[line] = true
			}
		case "disable":
			if open == nil {
				open = &lineRange{start: comment.Location.Line}
			}
		case "restore":
			if open != nil {
				open.end = comment.EndLine
				ret.ranges = append(ret.ranges, *open)
				open = nil
			}
		}
	}
	if open != nil {
		ret.ranges = append(ret.ranges, *open)
	}
	return ret
}

// nextCodeLine returns the 1-based line of the first line after offset holding code
func nextCodeLine(src []byte, offset int) int {
	if offset > len(src) {
		return 0
	}
	line := bytes.Count(src[:offset], []byte{'\n'}) + 1
	rest := src[offset:]
	if idx := bytes.IndexByte(rest, '\n'); idx != -1 {
		rest = rest[idx+1:]
		line++
	} else {
		return 0
	}
	for len(rest) > 0 {
		text := rest
		if idx := bytes.IndexByte(rest, '\n'); idx != -1 {
			text = rest[:idx]
			rest = rest[idx+1:]
		} else {
			rest = nil
		}
		trimmed := bytes.TrimSpace(text)
		if len(trimmed) > 0 && !bytes.HasPrefix(trimmed, []byte("//")) {
			return line
		}
		line++
	}
	return 0
}
