// Package export writes assembled reviews to disk and beyond.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gosom/naver-place-reviews/naver"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileName returns the output file name for a run started at now.
func FileName(now time.Time) string {
	return fmt.Sprintf("naver_reviews_%s.csv", now.Format("20060102_150405"))
}

// WriteCSV writes the header and one row per review to path. The file
// starts with a UTF-8 byte order mark so spreadsheet tools pick the right
// encoding for Korean text.
func WriteCSV(path string, reviews []naver.Review) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write bom: %w", err)
	}

	w := csv.NewWriter(f)

	var header naver.Review
	if err := w.Write(header.CsvHeaders()); err != nil {
		return err
	}

	for i := range reviews {
		if err := w.Write(reviews[i].CsvRow()); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// ReadCSV reads a file written by WriteCSV, stripping the BOM, and returns
// the header and the data rows separately.
func ReadCSV(path string) (header []string, rows [][]string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	// Strip UTF-8 BOM if present
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, errors.New("empty csv file")
	}

	return records[0], records[1:], nil
}
