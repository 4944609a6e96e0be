package roadmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// DateGroups maps launch dates to the countries launching on them.
// Countries keep the order in which they were added.
type DateGroups map[string][]string

// GroupByDate groups countries by launch date in a single pass.
func GroupByDate(records []domain.RoadmapRecord) DateGroups {
	groups := make(DateGroups)
	for _, r := range records {
		groups[r.LaunchDate] = append(groups[r.LaunchDate], r.Country)
	}
	return groups
}

// Dates returns the launch dates in ascending lexical order.
func (g DateGroups) Dates() []string {
	dates := make([]string, 0, len(g))
	for d := range g {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// RenderArrayEntries renders the records as object-literal array entries.
// Currency and fee are placeholders; countries keep sheet order.
func RenderArrayEntries(records []domain.RoadmapRecord) string {
	groups := GroupByDate(records)

	var b strings.Builder
	b.WriteString("\n")
	for _, date := range groups.Dates() {
		fmt.Fprintf(&b, "  // Coming %s\n", date)
		for _, country := range groups[date] {
			fmt.Fprintf(&b,
				"  { country: \"%s\", currency: \"TBD\", crossBorderFee: \"TBD\", launchDate: \"%s\" },\n",
				country, date)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMapEntries renders the records as country-to-date map entries.
// Countries are sorted alphabetically within each date.
func RenderMapEntries(records []domain.RoadmapRecord) string {
	groups := GroupByDate(records)

	var b strings.Builder
	b.WriteString("\n")
	for _, date := range groups.Dates() {
		fmt.Fprintf(&b, "  // Coming %s\n", date)

		countries := append([]string(nil), groups[date]...)
		sort.Strings(countries)
		for _, country := range countries {
			fmt.Fprintf(&b, "  \"%s\": \"%s\",\n", country, date)
		}
	}
	return b.String()
}

// Render dispatches to the renderer for kind.
func Render(kind domain.Rendering, records []domain.RoadmapRecord) (string, error) {
	switch kind {
	case domain.RenderingArrayEntries:
		return RenderArrayEntries(records), nil
	case domain.RenderingMapEntries:
		return RenderMapEntries(records), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedRendering, kind)
	}
}
