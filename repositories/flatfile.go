// Package repositories persists the chat state as flat record stores: one
// record per line, fields joined with '|'. Each store is a single file read
// or rewritten whole on every call; the design assumes a single process per
// backing file.
package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"groupchat/errors"
)

const delimiter = "|"

// appendLine adds one record to the end of the store, creating the file on
// first use.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if _, err = f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}

// readLines returns every non-empty line of the store, in file order.
// A missing file is an empty store, not an error.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// rewriteLines replaces the whole store with the given records. The write
// goes to a temp file in the same directory followed by an atomic rename, so
// a crash mid-write leaves either the old or the new complete file, never a
// truncated one.
func rewriteLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".rewrite-*")
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	tmp := f.Name()
	discard := func(err error) error {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	for _, line := range lines {
		if _, err = f.WriteString(line + "\n"); err != nil {
			return discard(err)
		}
	}
	if err = f.Sync(); err != nil {
		return discard(err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}

// firstField returns the part of the line before the first delimiter.
func firstField(line string) string {
	field, _, _ := strings.Cut(line, delimiter)
	return field
}
