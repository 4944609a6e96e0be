package roadmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

func rec(country, date string) domain.RoadmapRecord {
	return domain.RoadmapRecord{Country: country, LaunchDate: date}
}

func TestGroupByDate(t *testing.T) {
	groups := GroupByDate([]domain.RoadmapRecord{
		rec("B", "2025-02"),
		rec("A", "2025-01"),
		rec("C", "2025-02"),
	})

	assert.Equal(t, []string{"2025-01", "2025-02"}, groups.Dates())
	assert.Equal(t, []string{"B", "C"}, groups["2025-02"])
}

func TestRenderArrayEntries(t *testing.T) {
	records := Parse("hdr,,,\nr1,2025-06-01,x,Mexico\nr2,2025-09-01,y,Kenya", ',')

	got := RenderArrayEntries(records)

	want := "\n" +
		"  // Coming 2025-06-01\n" +
		"  { country: \"Mexico\", currency: \"TBD\", crossBorderFee: \"TBD\", launchDate: \"2025-06-01\" },\n" +
		"\n" +
		"  // Coming 2025-09-01\n" +
		"  { country: \"Kenya\", currency: \"TBD\", crossBorderFee: \"TBD\", launchDate: \"2025-09-01\" },\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderMapEntries(t *testing.T) {
	records := []domain.RoadmapRecord{
		rec("Kenya", "2025-09-01"),
		rec("Mexico", "2025-06-01"),
	}

	got := RenderMapEntries(records)

	want := "\n" +
		"  // Coming 2025-06-01\n" +
		"  \"Mexico\": \"2025-06-01\",\n" +
		"  // Coming 2025-09-01\n" +
		"  \"Kenya\": \"2025-09-01\",\n"
	assert.Equal(t, want, got)
}

// The two renderings order countries differently within a date group.
func TestRender_IntraGroupOrderDiffers(t *testing.T) {
	records := []domain.RoadmapRecord{
		rec("A", "2025-01"),
		rec("C", "2025-01"),
		rec("B", "2025-01"),
	}

	mapped := RenderMapEntries(records)
	assert.Less(t, strings.Index(mapped, `"A"`), strings.Index(mapped, `"B"`))
	assert.Less(t, strings.Index(mapped, `"B"`), strings.Index(mapped, `"C"`))

	array := RenderArrayEntries(records)
	assert.Less(t, strings.Index(array, `"A"`), strings.Index(array, `"C"`))
	assert.Less(t, strings.Index(array, `"C"`), strings.Index(array, `"B"`))
}

func TestRenderMapEntries_DoesNotReorderInput(t *testing.T) {
	records := []domain.RoadmapRecord{rec("Z", "d"), rec("A", "d")}

	_ = RenderMapEntries(records)

	groups := GroupByDate(records)
	assert.Equal(t, []string{"Z", "A"}, groups["d"])
	assert.Equal(t, "Z", records[0].Country)
}

func TestRender_Idempotent(t *testing.T) {
	records := []domain.RoadmapRecord{
		rec("Ghana", "2026-03"),
		rec("Chile", "2025-11"),
		rec("Peru", "2026-03"),
		rec("Chile", "2025-11"),
	}

	for _, kind := range []domain.Rendering{domain.RenderingArrayEntries, domain.RenderingMapEntries} {
		first, err := Render(kind, records)
		require.NoError(t, err)
		second, err := Render(kind, records)
		require.NoError(t, err)
		assert.Equal(t, first, second, string(kind))
	}
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "\n", RenderArrayEntries(nil))
	assert.Equal(t, "\n", RenderMapEntries(nil))
}

func TestRender_UnknownKind(t *testing.T) {
	_, err := Render(domain.Rendering("yaml"), nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedRendering)
}
