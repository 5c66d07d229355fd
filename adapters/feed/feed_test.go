package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawlab/domain/core"
	"drawlab/domain/draw"
)

var lotto = draw.Variant{GameType: "lotto", PickCount: 6, MaxNumber: 49}

func TestParseTXT(t *testing.T) {
	input := `
1. 05.01.1994 5,11,23,31,45,48

not a draw line
2. 12.01.1994 1,2,3,4,5,6
bogus. 19.01.1994 7,8,9,10,11,12
3. 19-01-1994 7,8,9,10,11,12
`
	history, err := ParseTXT(strings.NewReader(input), "lotto", "mbnet")
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, int64(1), history[0].DrawNumber)
	assert.Equal(t, "1994-01-05", history[0].Date.String())
	assert.Equal(t, []int{5, 11, 23, 31, 45, 48}, history[0].Numbers)
	assert.Equal(t, "mbnet", history[0].Provider)
	assert.Equal(t, int64(2), history[1].DrawNumber)
}

func TestParseCSV(t *testing.T) {
	input := "draw_number,draw_date,numbers\n" +
		"10,2024-03-02,1;2;3;4;5;6\n" +
		"11,2024-03-09,7;8;9;10;11;12\n"

	history, err := ParseCSV(strings.NewReader(input), "lotto", "export")
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, int64(10), history[0].DrawNumber)
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12}, history[1].Numbers)
}

func TestParseJSON(t *testing.T) {
	doc := `{"draws": [
		{"draw_number": 5, "draw_date": "2024-05-04", "numbers": [3, 9, 17, 25, 33, 41]},
		{"draw_number": 6, "numbers": [1, 2, 3, 4, 5, 6]},
		{"draw_number": 7, "draw_date": "2024-05-11", "numbers": [2, 4, 6, 8, 10, 12]}
	]}`

	history, err := ParseJSON([]byte(doc), "lotto", "api")
	require.NoError(t, err)

	// The entry without a date is skipped.
	require.Len(t, history, 2)
	assert.Equal(t, int64(5), history[0].DrawNumber)
	assert.Equal(t, int64(7), history[1].DrawNumber)
}

func TestParseJSON_NoDrawsArray(t *testing.T) {
	_, err := ParseJSON([]byte(`{"results": []}`), "lotto", "api")
	assert.Error(t, err)
}

func TestValidateBatch(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	history := draw.History{
		mk(1, "2024-05-01", 1, 2, 3, 4, 5, 6),
		mk(2, "2024-05-08", 1, 2, 3, 4, 5, 5),   // duplicate number
		mk(3, "2024-12-24", 1, 2, 3, 4, 5, 6),   // future
		mk(-4, "2024-05-15", 1, 2, 3, 4, 5, 6),  // bad draw number
		mk(5, "2024-05-22", 1, 2, 3, 4, 5, 50),  // out of range
	}

	valid, report := ValidateBatch(history, lotto, now)

	assert.Equal(t, 5, report.Parsed)
	assert.Equal(t, 1, report.Valid)
	require.Len(t, valid, 1)
	assert.Equal(t, int64(1), valid[0].DrawNumber)
	assert.Len(t, report.Rejected, 4)
}

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"draws": [{"draw_number": 1, "draw_date": "2024-01-06", "numbers": [1,2,3,4,5,6]}]}`))
	}))
	defer srv.Close()

	history, err := NewClient(srv.URL, "lotto", "api").Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(1), history[0].DrawNumber)
}

func TestClientFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "lotto", "api").Fetch(context.Background())
	assert.Error(t, err)
}

func mk(number int64, date string, numbers ...int) draw.Draw {
	d, err := core.ParseDrawDate(date)
	if err != nil {
		panic(err)
	}
	return draw.Draw{DrawNumber: number, Date: d, GameType: "lotto", Numbers: numbers}
}
