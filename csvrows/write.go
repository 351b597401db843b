package csvrows

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/lowlandresearch/larc/errors"
	"github.com/lowlandresearch/larc/fsutil"
	"github.com/lowlandresearch/larc/maybe"
)

const filePermission os.FileMode = 0o644

// WriteMaps writes rows to w. The columns come from WithColumnMap, then
// WithColumns, then the sorted union of the row keys. With explicit columns
// every row must hold every source key; with derived columns missing keys
// are written as "".
func WriteMaps(w io.Writer, rows []map[string]any, opts ...Option) error {
	o := newOptions(opts)

	var (
		columns []string
		sources []string
		strict  = true
	)
	switch {
	case len(o.renames) > 0:
		for _, rn := range o.renames {
			sources = append(sources, rn.From)
			columns = append(columns, rn.To)
		}
	case o.columns != nil:
		sources, columns = o.columns, o.columns
	default:
		sources = unionKeys(rows)
		columns, strict = sources, false
	}

	cw := newWriter(w, o)
	if o.header {
		if err := cw.Write(columns); err != nil {
			return writeError(err)
		}
	}
	for i, row := range rows {
		rec := make([]string, len(sources))
		for j, key := range sources {
			v, ok := row[key]
			if !ok && strict {
				return errors.InvalidInput("rows", fmt.Sprintf("row %d has no key %q", i, key))
			}
			rec[j] = format(v)
		}
		if err := cw.Write(rec); err != nil {
			return writeError(err)
		}
	}
	return flush(cw)
}

// WriteRecords writes positional rows to w. A header is written only when
// WithColumns is given and WithoutHeader is not; each row then supplies one
// value per column.
func WriteRecords(w io.Writer, rows [][]any, opts ...Option) error {
	o := newOptions(opts)
	cw := newWriter(w, o)

	if o.columns != nil && o.header {
		if err := cw.Write(o.columns); err != nil {
			return writeError(err)
		}
	}
	for i, row := range rows {
		n := len(row)
		if o.columns != nil {
			if len(row) < len(o.columns) {
				return errors.InvalidInput("rows", fmt.Sprintf("row %d has %d fields, want %d", i, len(row), len(o.columns)))
			}
			n = len(o.columns)
		}
		rec := make([]string, n)
		for j := range n {
			rec[j] = format(row[j])
		}
		if err := cw.Write(rec); err != nil {
			return writeError(err)
		}
	}
	return flush(cw)
}

// ToPath writes maps to the file at path, truncating it.
func ToPath(path string, rows []map[string]any, opts ...Option) error {
	path, err := fsutil.ExpandUser(path)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return errors.IO("create csv", path, err)
	}
	if err := WriteMaps(f, rows, opts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.IO("close csv", path, err)
	}
	return nil
}

// ToString renders maps as CSV text.
func ToString(rows []map[string]any, opts ...Option) (string, error) {
	var b strings.Builder
	if err := WriteMaps(&b, rows, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RecordsToString renders positional rows as CSV text.
func RecordsToString(rows [][]any, opts ...Option) (string, error) {
	var b strings.Builder
	if err := WriteRecords(&b, rows, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func newWriter(w io.Writer, o *options) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = o.comma
	cw.UseCRLF = o.crlf
	return cw
}

func flush(cw *csv.Writer) error {
	cw.Flush()
	if err := cw.Error(); err != nil {
		return writeError(err)
	}
	return nil
}

func writeError(err error) error {
	return errors.IO("write csv", "", err)
}

func unionKeys(rows []map[string]any) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func format(v any) string {
	if maybe.IsAbsent(v) {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
