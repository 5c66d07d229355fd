// Package feed ingests draw history from external sources: archive TXT
// dumps, CSV exports and JSON feeds. Parsing is lax (malformed lines are
// skipped), validation afterwards is strict.
package feed

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"drawlab/domain/core"
	"drawlab/domain/draw"
	"drawlab/internal/errors"
)

// ParseTXT parses archive lines of the form
//
//	1234. 05.01.1994 1,5,11,23,31,48
//
// Blank lines and lines that do not match are skipped.
func ParseTXT(r io.Reader, game core.GameType, provider string) (draw.History, error) {
	var history draw.History
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		left, right, found := strings.Cut(line, ".")
		if !found {
			continue
		}
		drawNumber, err := strconv.ParseInt(strings.TrimSpace(left), 10, 64)
		if err != nil {
			continue
		}
		dateStr, numsStr, found := strings.Cut(strings.TrimSpace(right), " ")
		if !found {
			continue
		}
		date, err := time.Parse("02.01.2006", dateStr)
		if err != nil {
			continue
		}
		numbers, err := splitNumbers(numsStr)
		if err != nil {
			continue
		}
		history = append(history, draw.Draw{
			DrawNumber: drawNumber,
			Date:       core.NewDrawDate(date),
			GameType:   game,
			Provider:   provider,
			Numbers:    numbers,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithCode(errors.CodeFeedError, errors.Wrap(err, "reading txt feed"))
	}
	return history, nil
}

// ParseCSV parses rows of draw_number,draw_date,numbers where the date
// is ISO (2006-01-02) and numbers are semicolon separated. A header row
// is detected and skipped.
func ParseCSV(r io.Reader, game core.GameType, provider string) (draw.History, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	var history draw.History
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WithCode(errors.CodeFeedError, errors.Wrap(err, "reading csv feed"))
		}
		if first {
			first = false
			if _, convErr := strconv.ParseInt(record[0], 10, 64); convErr != nil {
				continue // header
			}
		}
		drawNumber, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			continue
		}
		date, err := core.ParseDrawDate(strings.TrimSpace(record[1]))
		if err != nil {
			continue
		}
		numbers, err := splitList(record[2], ";")
		if err != nil {
			continue
		}
		history = append(history, draw.Draw{
			DrawNumber: drawNumber,
			Date:       date,
			GameType:   game,
			Provider:   provider,
			Numbers:    numbers,
		})
	}
	return history, nil
}

// ParseJSON parses a feed document of the form
//
//	{"draws": [{"draw_number": 1, "draw_date": "2024-01-06", "numbers": [..]}]}
//
// Entries missing a field are skipped.
func ParseJSON(data []byte, game core.GameType, provider string) (draw.History, error) {
	root := gjson.GetBytes(data, "draws")
	if !root.Exists() || !root.IsArray() {
		return nil, errors.New(errors.CodeFeedError, "feed document has no draws array")
	}

	var history draw.History
	root.ForEach(func(_, entry gjson.Result) bool {
		drawNumber := entry.Get("draw_number")
		dateStr := entry.Get("draw_date")
		rawNumbers := entry.Get("numbers")
		if !drawNumber.Exists() || !dateStr.Exists() || !rawNumbers.IsArray() {
			return true
		}
		date, err := core.ParseDrawDate(dateStr.String())
		if err != nil {
			return true
		}
		var numbers []int
		for _, n := range rawNumbers.Array() {
			numbers = append(numbers, int(n.Int()))
		}
		history = append(history, draw.Draw{
			DrawNumber: drawNumber.Int(),
			Date:       date,
			GameType:   game,
			Provider:   provider,
			Numbers:    numbers,
		})
		return true
	})
	return history, nil
}

func splitNumbers(s string) ([]int, error) {
	return splitList(s, ",")
}

func splitList(s, sep string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	numbers := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		numbers[i] = n
	}
	return numbers, nil
}
