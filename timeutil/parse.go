package timeutil

import (
	"os"
	"strconv"
	"time"

	"github.com/araddon/dateparse"

	"github.com/lowlandresearch/larc/errors"
	"github.com/lowlandresearch/larc/maybe"
)

// CompactLayout is the date and time prefix of compact timestamps such as
// 20190131T130506123456. The trailing one to six digits are microseconds.
const CompactLayout = "20060102T150405"

// Epoch is the Unix epoch, the fallback of To.
var Epoch = time.Unix(0, 0)

// Parse parses s in any layout dateparse recognises. Timestamps without a
// zone are read as UTC.
func Parse(s string) (time.Time, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, errors.InvalidFormat(s, "timestamp").WithCause(err)
	}
	return t, nil
}

// ParseLocal parses s, reading zone-less timestamps in local time, and
// returns the result in the local zone.
func ParseLocal(s string) (time.Time, error) {
	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, errors.InvalidFormat(s, "timestamp").WithCause(err)
	}
	return t.In(time.Local), nil
}

// Maybe parses s and returns None when it is not a timestamp.
func Maybe(s string) maybe.Option[time.Time] {
	t, err := Parse(s)
	return maybe.FromOk(t, err == nil)
}

// To converts v to a time. A time.Time is returned unchanged and a string is
// tried as a compact timestamp and then with Parse. Anything else yields def.
func To(v any, def time.Time) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	case string:
		if parsed, ok := parseCompact(t); ok {
			return parsed
		}
		if parsed, err := Parse(t); err == nil {
			return parsed
		}
	}
	return def
}

// ToWith returns a function for To with a fixed default.
func ToWith(def time.Time) func(any) time.Time {
	return func(v any) time.Time { return To(v, def) }
}

func parseCompact(s string) (time.Time, bool) {
	n := len(CompactLayout)
	if len(s) <= n || len(s) > n+6 {
		return time.Time{}, false
	}
	base, err := time.Parse(CompactLayout, s[:n])
	if err != nil {
		return time.Time{}, false
	}
	frac := s[n:]
	micros, err := strconv.Atoi(frac)
	if err != nil || micros < 0 {
		return time.Time{}, false
	}
	for range 6 - len(frac) {
		micros *= 10
	}
	return base.Add(time.Duration(micros) * time.Microsecond), true
}

// ModTime returns the modification time of path.
func ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, errors.IO("stat", path, err)
	}
	return info.ModTime(), nil
}

// Newer reports whether path was modified after test.
func Newer(path, test string) (bool, error) {
	a, b, err := modTimes(path, test)
	if err != nil {
		return false, err
	}
	return a.After(b), nil
}

// Older reports whether path was modified before test.
func Older(path, test string) (bool, error) {
	a, b, err := modTimes(path, test)
	if err != nil {
		return false, err
	}
	return a.Before(b), nil
}

func modTimes(path, test string) (time.Time, time.Time, error) {
	a, err := ModTime(path)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	b, err := ModTime(test)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return a, b, nil
}
