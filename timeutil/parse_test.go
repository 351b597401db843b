package timeutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowlandresearch/larc/errors"
)

func TestParse(t *testing.T) {
	want := time.Date(2019, 1, 31, 13, 5, 6, 0, time.UTC)
	for _, in := range []string{
		"2019-01-31T13:05:06Z",
		"2019-01-31 13:05:06",
		"2019/01/31 13:05:06",
	} {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v", got)
		})
	}

	_, err := Parse("not a date")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestParseLocal(t *testing.T) {
	got, err := ParseLocal("2019-01-31 13:05:06")
	require.NoError(t, err)
	assert.Equal(t, time.Local, got.Location())
	assert.Equal(t, 13, got.Hour())
}

func TestMaybe(t *testing.T) {
	assert.True(t, Maybe("2020-02-03").IsSome())
	assert.True(t, Maybe("yesterday-ish").IsNone())
}

func TestTo(t *testing.T) {
	def := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	assert.True(t, now.Equal(To(now, def)))
	assert.True(t, now.Equal(To(&now, def)))
	assert.True(t, time.Date(2019, 1, 31, 0, 0, 0, 0, time.UTC).Equal(To("2019-01-31", def)))
	assert.True(t, def.Equal(To("garbage", def)))
	assert.True(t, def.Equal(To(42, def)))
	assert.True(t, Epoch.Equal(ToWith(Epoch)(nil)))
}

func TestToCompact(t *testing.T) {
	got := To("20190131T130506123456", Epoch)
	assert.True(t, time.Date(2019, 1, 31, 13, 5, 6, 123456000, time.UTC).Equal(got), "got %v", got)

	got = To("20190131T1305065", Epoch)
	assert.True(t, time.Date(2019, 1, 31, 13, 5, 6, 500000000, time.UTC).Equal(got), "got %v", got)

	_, ok := parseCompact("20190131T130506")
	assert.False(t, ok, "a compact timestamp needs a fraction")
	_, ok = parseCompact("20190131T130506xx")
	assert.False(t, ok)
}

func TestNewerOlder(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old")
	young := filepath.Join(dir, "new")
	require.NoError(t, os.WriteFile(old, nil, 0o644))
	require.NoError(t, os.WriteFile(young, nil, 0o644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	newer, err := Newer(young, old)
	require.NoError(t, err)
	assert.True(t, newer)

	older, err := Older(young, old)
	require.NoError(t, err)
	assert.False(t, older)

	_, err = Newer(filepath.Join(dir, "missing"), old)
	assert.True(t, errors.HasCode(err, errors.ErrCodeIO))
}
