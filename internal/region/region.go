// Package region locates and rewrites a generated region inside an otherwise
// hand-maintained text file.
//
// A region is described by a regular expression matched in dot-all mode, so
// "any character" spans line breaks. The named group "region" marks the span
// that is replaced; the rest of the match anchors it. Without that group the
// whole match is the region. Patterns should use non-greedy bodies so the
// earliest closing boundary ends the region.
//
// Patching never produces partial output: either the region is found and only
// its bytes change, or ErrNotFound is returned with the text unchanged.
package region

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// GroupName is the capture group that marks the replaced span.
const GroupName = "region"

// ErrNotFound indicates the pattern did not match.
var ErrNotFound = fmt.Errorf("region: %w", domain.ErrPatternNotFound)

// Pattern is a compiled generated-region pattern.
type Pattern struct {
	expr  string
	re    *regexp.Regexp
	group int
}

// Compile parses expr and enables dot-all matching.
func Compile(expr string) (*Pattern, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: empty region pattern", domain.ErrInvalidInput)
	}

	source := expr
	if !strings.HasPrefix(source, "(?s)") {
		source = "(?s)" + source
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: region pattern: %w", domain.ErrInvalidInput, err)
	}

	return &Pattern{
		expr:  expr,
		re:    re,
		group: re.SubexpIndex(GroupName),
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the expression the pattern was compiled from.
func (p *Pattern) String() string {
	return p.expr
}

// Locate returns the byte span of the region in text.
func (p *Pattern) Locate(text string) (start, end int, ok bool) {
	loc := p.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return 0, 0, false
	}

	if p.group <= 0 {
		return loc[0], loc[1], true
	}

	start, end = loc[2*p.group], loc[2*p.group+1]
	if start < 0 {
		// The group is optional and did not participate; treat as no region.
		return 0, 0, false
	}
	return start, end, true
}

// Patch replaces the region of the first match in text with replacement.
// The replacement is inserted literally. If the pattern does not match,
// text is returned unchanged together with ErrNotFound.
func (p *Pattern) Patch(text, replacement string) (string, error) {
	start, end, ok := p.Locate(text)
	if !ok {
		return text, ErrNotFound
	}

	var b strings.Builder
	b.Grow(len(text) - (end - start) + len(replacement))
	b.WriteString(text[:start])
	b.WriteString(replacement)
	b.WriteString(text[end:])
	return b.String(), nil
}

// IsNotFound reports whether err indicates a missing region.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrPatternNotFound)
}
