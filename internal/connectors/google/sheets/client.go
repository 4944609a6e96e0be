// Package sheets reads the roadmap spreadsheet through the Sheets API.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/roadmap-sync/internal/connectors/google"
	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
)

// valueRenderOption asks for cell values as they are displayed.
const valueRenderOption = "FORMATTED_VALUE"

// Client fetches a sheet and encodes it as delimited text.
type Client struct {
	svc       *sheets.Service
	limiter   *google.Throttle
	delimiter rune
}

// New creates a sheets client. A zero delimiter selects the default.
func New(svc *sheets.Service, delimiter rune) *Client {
	if delimiter == 0 {
		delimiter = domain.DefaultDelimiter
	}
	return &Client{
		svc:       svc,
		limiter:   google.NewThrottle(google.SheetsQuota),
		delimiter: delimiter,
	}
}

// FetchSpreadsheet returns the values of the named sheet, one line per row.
func (c *Client) FetchSpreadsheet(ctx context.Context, spreadsheetID, sheetName string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, sheetName).
		ValueRenderOption(valueRenderOption).
		Context(ctx).
		Do()
	if err != nil {
		c.limiter.Observe(err)
		return "", fmt.Errorf("sheets: get %s!%s: %w", spreadsheetID, sheetName, google.WrapError(err))
	}

	return Encode(resp.Values, c.delimiter), nil
}

// Encode joins each row's cells with the delimiter. Line breaks inside a
// cell are flattened to spaces so every row stays on one line.
func Encode(rows [][]interface{}, delimiter rune) string {
	var b strings.Builder
	sep := string(delimiter)

	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteString(sep)
			}
			b.WriteString(flatten(fmt.Sprint(cell)))
		}
	}

	return b.String()
}

func flatten(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
