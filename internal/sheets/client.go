package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/gridcrm/gridcrm-backend/internal/pkg/metrics"
)

// Client implements Source over the Google Sheets API.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetIDs      map[string]int64
	log           *slog.Logger
}

// NewClient builds a Sheets client for one spreadsheet. credentialsFile is a
// service-account JSON key; when empty, ambient application-default
// credentials are used.
func NewClient(ctx context.Context, spreadsheetID, credentialsFile string, log *slog.Logger) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, gsheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("parse credentials: %w", err)
		}
		opts = append(opts, option.WithTokenSource(creds.TokenSource))
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	c := &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
		log:           log,
	}
	if err := c.loadSheetIDs(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// loadSheetIDs maps tab titles to numeric sheet IDs, needed for row deletes.
func (c *Client) loadSheetIDs(ctx context.Context) error {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("spreadsheet metadata: %w", err)
	}
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			c.sheetIDs[s.Properties.Title] = s.Properties.SheetId
		}
	}
	return nil
}

func (c *Client) Read(ctx context.Context, ref Range) ([][]string, error) {
	start := time.Now()
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, ref.A1()).
		Context(ctx).Do()
	metrics.SheetReadDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ref.A1(), err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = cellString(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) Write(ctx context.Context, ref Range, rows [][]string, mode WriteMode) error {
	vr := &gsheets.ValueRange{Values: cellValues(rows)}
	var err error
	switch mode {
	case Append:
		_, err = c.svc.Spreadsheets.Values.Append(c.spreadsheetID, ref.A1(), vr).
			ValueInputOption("USER_ENTERED").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
	case Update:
		_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, ref.A1(), vr).
			ValueInputOption("USER_ENTERED").
			Context(ctx).Do()
	default:
		return fmt.Errorf("unknown write mode %d", mode)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", ref.A1(), err)
	}
	metrics.SheetWritesTotal.Inc()
	return nil
}

func (c *Client) DeleteRows(ctx context.Context, sheet string, start, end int) error {
	id, ok := c.sheetIDs[sheet]
	if !ok {
		return fmt.Errorf("unknown sheet %q", sheet)
	}
	if start < 1 || end < start {
		return fmt.Errorf("invalid row range %d..%d", start, end)
	}
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    id,
					Dimension:  "ROWS",
					StartIndex: int64(start - 1), // API range is 0-based, end-exclusive
					EndIndex:   int64(end),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete rows %s %d..%d: %w", sheet, start, end, err)
	}
	metrics.SheetWritesTotal.Inc()
	return nil
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func cellValues(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		out[i] = cells
	}
	return out
}
