package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/mamadbah2/barstock/internal/config"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *GoogleSheetRepository {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	repo, err := NewGoogleSheetRepository(context.Background(),
		config.SheetsConfig{SpreadsheetID: "sheet-id"}, nil,
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return repo
}

func TestReadRange(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.True(t, strings.Contains(r.URL.Path, "/spreadsheets/sheet-id/values/"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Usage!A1:J1","values":[["Opening session","Closing session"]]}`))
	})

	values, err := repo.ReadRange(context.Background(), "Usage!A1:J1")
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "Opening session", values[0][0])
}

func TestAppendRows(t *testing.T) {
	var got struct {
		Values [][]interface{} `json:"values"`
	}
	calls := 0
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, ":append"), r.URL.Path)
		assert.Equal(t, "USER_ENTERED", r.URL.Query().Get("valueInputOption"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-id"}`))
	})

	err := repo.AppendRows(context.Background(), "Usage!A:J", [][]interface{}{{"Monday", "Friday", "Big Leo", 12}})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.Len(t, got.Values, 1)
	assert.Equal(t, "Big Leo", got.Values[0][2])

	require.NoError(t, repo.AppendRows(context.Background(), "Usage!A:J", nil))
	assert.Equal(t, 1, calls)
}

func TestEmptyRangeRejected(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})

	_, err := repo.ReadRange(context.Background(), "")
	assert.ErrorIs(t, err, errEmptyRange)
	assert.ErrorIs(t, repo.AppendRows(context.Background(), "", [][]interface{}{{"x"}}), errEmptyRange)
}

func TestMissingSpreadsheetID(t *testing.T) {
	_, err := NewGoogleSheetRepository(context.Background(), config.SheetsConfig{}, nil, option.WithoutAuthentication())
	assert.Error(t, err)
}
