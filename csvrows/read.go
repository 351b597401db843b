package csvrows

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/lowlandresearch/larc/errors"
	"github.com/lowlandresearch/larc/fsutil"
)

// ReadMaps reads every record of r into a map keyed by column name.
// Missing trailing fields map to "". Fields beyond the last column are
// dropped.
func ReadMaps(r io.Reader, opts ...Option) ([]map[string]string, error) {
	o := newOptions(opts)
	records, err := readAll(r, o)
	if err != nil {
		return nil, err
	}

	columns := o.columns
	if o.header {
		if len(records) == 0 {
			return []map[string]string{}, nil
		}
		if columns == nil {
			columns = records[0]
		}
		records = records[1:]
	}
	if columns == nil {
		return nil, errors.InvalidInput("columns", "reading maps without a header needs WithColumns")
	}

	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		row := make(map[string]string, len(columns))
		for i, c := range columns {
			if i < len(rec) {
				row[c] = rec[i]
			} else {
				row[c] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadRecords reads every record of r. A header row is skipped unless
// WithoutHeader is given.
func ReadRecords(r io.Reader, opts ...Option) ([][]string, error) {
	o := newOptions(opts)
	records, err := readAll(r, o)
	if err != nil {
		return nil, err
	}
	if o.header && len(records) > 0 {
		records = records[1:]
	}
	return records, nil
}

// FromPath reads maps from the file at path. A leading "~" is expanded.
func FromPath(path string, opts ...Option) ([]map[string]string, error) {
	path, err := fsutil.ExpandUser(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IO("open csv", path, err)
	}
	defer f.Close()
	return ReadMaps(f, opts...)
}

// FromString reads maps from content.
func FromString(content string, opts ...Option) ([]map[string]string, error) {
	return ReadMaps(strings.NewReader(content), opts...)
}

func readAll(r io.Reader, o *options) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = o.lazyQuote

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "malformed csv").WithCause(err)
	}
	return records, nil
}
