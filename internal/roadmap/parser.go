package roadmap

import (
	"strings"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// Column positions in the roadmap sheet.
const (
	launchDateColumn = 1
	countryColumn    = 3
	minColumns       = 4
)

// Parse extracts roadmap records from delimited sheet text.
// The first row is a header and is discarded. Rows with fewer than four
// fields, or with an empty country or launch date, are skipped.
func Parse(raw string, delim rune) []domain.RoadmapRecord {
	records := make([]domain.RoadmapRecord, 0)

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return records
	}

	lines := strings.Split(raw, "\n")
	sep := string(delim)

	for _, line := range lines[1:] {
		fields := strings.Split(line, sep)
		if len(fields) < minColumns {
			continue
		}

		launchDate := strings.TrimSpace(fields[launchDateColumn])
		country := strings.TrimSpace(fields[countryColumn])
		if country == "" || launchDate == "" {
			continue
		}

		records = append(records, domain.RoadmapRecord{
			Country:    country,
			LaunchDate: launchDate,
		})
	}

	return records
}
