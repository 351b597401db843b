package fsutil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lowlandresearch/larc/errors"
	"github.com/lowlandresearch/larc/maybe"
)

// BackupLayout is the timestamp layout used in backup names.
const BackupLayout = "2006-01-02_150405"

// ExpandUser replaces a leading "~" with the current user's home directory.
func ExpandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.IO("resolve home directory", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Walk returns the paths of every regular file below root in lexical order.
func Walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.IO("walk", root, err)
	}
	return files, nil
}

// FindInParents looks for name in start and then in each of its parents.
func FindInParents(name, start string) maybe.Option[string] {
	dir, err := ExpandUser(start)
	if err != nil {
		return maybe.None[string]()
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return maybe.None[string]()
	}
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return maybe.Some(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return maybe.None[string]()
		}
		dir = parent
	}
}

// BackupPath returns the backup name for path in the same directory:
// backup-<stem>-<modification time><ext>.
func BackupPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.IO("stat", path, err)
	}
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	name := "backup-" + stem + "-" + info.ModTime().Format(BackupLayout) + ext
	return filepath.Join(filepath.Dir(path), name), nil
}

// Peek returns up to n bytes from the start of the file at path, decoding
// each byte as a Latin-1 character.
func Peek(n int, path string) (string, error) {
	if n < 0 {
		return "", errors.InvalidInput("n", "negative byte count")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", errors.IO("open", path, err)
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", errors.IO("read", path, err)
	}
	runes := make([]rune, read)
	for i, b := range buf[:read] {
		runes[i] = rune(b)
	}
	return string(runes), nil
}
