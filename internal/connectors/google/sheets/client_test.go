package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/custodia-labs/roadmap-sync/internal/connectors/google"
	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, delimiter rune) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := google.NewSheetsService(context.Background(), nil,
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)

	return New(svc, delimiter)
}

func TestFetchSpreadsheet(t *testing.T) {
	var gotPath, gotRender string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRender = r.URL.Query().Get("valueRenderOption")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"range": "Sheet1!A1:F3",
			"majorDimension": "ROWS",
			"values": [
				["Country", "Code", "Status", "Date", "Owner", "Notes"],
				["Brazil", "BR", "Live", "2025-06-01"],
				["Japan", "JP", "Planned", "Q3 2026", "", "multi\nline"]
			]
		}`))
	}, 0)

	text, err := client.FetchSpreadsheet(context.Background(), "sheet-123", "Sheet1")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(gotPath, "/spreadsheets/sheet-123/values/Sheet1"), gotPath)
	assert.Equal(t, valueRenderOption, gotRender)
	assert.Equal(t,
		"Country,Code,Status,Date,Owner,Notes\nBrazil,BR,Live,2025-06-01\nJapan,JP,Planned,Q3 2026,,multi line",
		text)
}

func TestFetchSpreadsheet_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"code": 404, "message": "Requested entity was not found."}}`))
	}, 0)

	_, err := client.FetchSpreadsheet(context.Background(), "missing", "Sheet1")
	require.Error(t, err)
	assert.ErrorIs(t, err, google.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "missing!Sheet1")
}

func TestEncode(t *testing.T) {
	rows := [][]interface{}{
		{"a", "b", 3},
		{},
		{"c\r\nd"},
	}

	assert.Equal(t, "a\tb\t3\n\nc d", Encode(rows, '\t'))
	assert.Empty(t, Encode(nil, ','))
}

func TestNew_DefaultDelimiter(t *testing.T) {
	assert.Equal(t, domain.DefaultDelimiter, New(nil, 0).delimiter)
	assert.Equal(t, ';', New(nil, ';').delimiter)
}
