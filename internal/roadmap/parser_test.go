package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

func TestParse_EndToEndScenario(t *testing.T) {
	raw := "hdr,,,\nr1,2025-06-01,x,Mexico\nr2,2025-09-01,y,Kenya"

	records := Parse(raw, ',')

	require.Len(t, records, 2)
	assert.Equal(t, domain.RoadmapRecord{Country: "Mexico", LaunchDate: "2025-06-01"}, records[0])
	assert.Equal(t, domain.RoadmapRecord{Country: "Kenya", LaunchDate: "2025-09-01"}, records[1])
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []domain.RoadmapRecord
	}{
		{
			name: "empty input",
			raw:  "",
			want: []domain.RoadmapRecord{},
		},
		{
			name: "header only",
			raw:  "id,date,notes,country",
			want: []domain.RoadmapRecord{},
		},
		{
			name: "short rows are skipped",
			raw:  "h\na,2025-01-01,b\nc,2025-02-01,d,Chile",
			want: []domain.RoadmapRecord{{Country: "Chile", LaunchDate: "2025-02-01"}},
		},
		{
			name: "blank country or date is skipped",
			raw:  "h\na,2025-01-01,b,  \nc,   ,d,Chile\ne,2025-03-01,f,Peru",
			want: []domain.RoadmapRecord{{Country: "Peru", LaunchDate: "2025-03-01"}},
		},
		{
			name: "fields are trimmed",
			raw:  "h\n a , 2025-01-01 , b ,  Ghana  ",
			want: []domain.RoadmapRecord{{Country: "Ghana", LaunchDate: "2025-01-01"}},
		},
		{
			name: "extra columns are ignored",
			raw:  "h\na,2025-01-01,b,Togo,extra,more",
			want: []domain.RoadmapRecord{{Country: "Togo", LaunchDate: "2025-01-01"}},
		},
		{
			name: "crlf line endings",
			raw:  "h\r\na,2025-01-01,b,Benin\r\nc,2025-01-02,d,Niger\r\n",
			want: []domain.RoadmapRecord{
				{Country: "Benin", LaunchDate: "2025-01-01"},
				{Country: "Niger", LaunchDate: "2025-01-02"},
			},
		},
		{
			name: "duplicates are preserved",
			raw:  "h\na,2025-01-01,b,Mali\na,2025-01-01,b,Mali",
			want: []domain.RoadmapRecord{
				{Country: "Mali", LaunchDate: "2025-01-01"},
				{Country: "Mali", LaunchDate: "2025-01-01"},
			},
		},
		{
			name: "surrounding blank lines",
			raw:  "\n\nh\na,2025-01-01,b,Chad\n\n",
			want: []domain.RoadmapRecord{{Country: "Chad", LaunchDate: "2025-01-01"}},
		},
		{
			name: "quoted commas are not understood",
			raw:  "h\na,2025-01-01,\"b,c\",Fiji",
			want: []domain.RoadmapRecord{{Country: "c\"", LaunchDate: "2025-01-01"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw, ','))
		})
	}
}

func TestParse_CustomDelimiter(t *testing.T) {
	raw := "h\tdate\tx\tcountry\na\t2025-04-01\tb\tNepal"

	records := Parse(raw, '\t')

	require.Len(t, records, 1)
	assert.Equal(t, "Nepal", records[0].Country)
	assert.Equal(t, "2025-04-01", records[0].LaunchDate)
}

func TestParse_CountMatchesWellFormedRows(t *testing.T) {
	raw := "h,h,h,h\n" +
		"1,2025-01-01,x,A\n" + // kept
		"2,2025-01-01\n" + // short
		"3,,x,B\n" + // no date
		"4,2025-01-02,x,\n" + // no country
		"garbage\n" + // short
		"5,2025-01-03,x,C,extra\n" // kept

	assert.Len(t, Parse(raw, ','), 2)
}
