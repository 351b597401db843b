package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowlandresearch/larc"
	"github.com/lowlandresearch/larc/config"
	"github.com/lowlandresearch/larc/errors"
)

func runtime(t *testing.T) *larc.Runtime {
	t.Helper()
	var cfg config.Config
	cfg.Environment = "production"
	cfg.Logging.Level = "error"
	cfg.ApplyDefaults()
	rt, err := larc.Start(context.Background(), &cfg)
	require.NoError(t, err)
	return rt
}

func run(t *testing.T, name string, args []string, stdin string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := commands[name].run(runtime(t), args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func tempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIPs(t *testing.T) {
	out, err := run(t, "ips", []string{"-sort"}, "b 10.0.0.10\na 10.0.0.2 # x 10.9.9.9\n")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2\n10.0.0.10\n", out)
}

func TestExpand(t *testing.T) {
	out, err := run(t, "expand", nil, "10.0.0.0/30 10.0.0.9\n# 10.1.0.0/16\n")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1\n10.0.0.2\n10.0.0.9\n", out)

	_, err = run(t, "expand", nil, "bogus\n")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestDiffAndIntLines(t *testing.T) {
	a := tempFile(t, "a.txt", "x\ny\nz\n")
	b := tempFile(t, "b.txt", "y\n")

	out, err := run(t, "difflines", []string{a, b}, "")
	require.NoError(t, err)
	assert.Equal(t, "x\nz\n", out)

	out, err = run(t, "intlines", []string{a, "-"}, "z\nq\n")
	require.NoError(t, err)
	assert.Equal(t, "z\n", out)

	_, err = run(t, "difflines", []string{a}, "")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", []string{"a.b[1]"}, `{"a": {"b": [1, "two"]}}`)
	require.NoError(t, err)
	assert.Equal(t, "\"two\"\n", out)

	out, err = run(t, "search", []string{"a.c"}, `{"a": {}}`)
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	_, err = run(t, "search", []string{"a"}, `{not json`)
	assert.True(t, errors.HasCode(err, errors.ErrCodeStageFailed))
}

func TestCSVCut(t *testing.T) {
	out, err := run(t, "csvcut", []string{"-columns", "port,ip"}, "ip,port,note\n10.0.0.1,22,ssh\n")
	require.NoError(t, err)
	assert.Equal(t, "port,ip\r\n22,10.0.0.1\r\n", out)

	_, err = run(t, "csvcut", nil, "a\n1\n")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
}
