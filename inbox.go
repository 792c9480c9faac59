package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nPaBwaYT/aessim/cripta"
)

var ErrInboxEmpty = errors.New("inbox directory is empty")

type Mode string

const (
	ModeEncrypt Mode = "enc"
	ModeDecrypt Mode = "dec"
)

// ParseMode принимает enc/encrypt/dec/decrypt без учета регистра
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "enc", "encrypt":
		return ModeEncrypt, nil
	case "dec", "decrypt":
		return ModeDecrypt, nil
	default:
		return "", fmt.Errorf("%w: %q", cripta.ErrUnknownMode, raw)
	}
}

// visibleFiles возвращает отсортированные по имени обычные записи каталога,
// пропуская подкаталоги и скрытые файлы (.gitkeep и т.п.)
func visibleFiles(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	files := entries[:0]
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		files = append(files, e)
	}
	return files, nil
}

// pickEntry возвращает первую по имени видимую запись каталога
func pickEntry(dir string) (os.DirEntry, error) {
	files, err := visibleFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInboxEmpty, dir)
	}
	return files[0], nil
}

// InboxInputPath - путь к единственному файлу из <inbox>/file
func InboxInputPath(inbox string) (string, error) {
	dir := filepath.Join(inbox, "file")
	entry, err := pickEntry(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, entry.Name()), nil
}

// InboxKeyHex читает hex-ключ из <inbox>/key
func InboxKeyHex(inbox string) (string, string, error) {
	dir := filepath.Join(inbox, "key")
	entry, err := pickEntry(dir)
	if err != nil {
		return "", "", err
	}

	path := filepath.Join(dir, entry.Name())
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read key file: %w", err)
	}
	return strings.TrimSpace(string(data)), path, nil
}

// InboxMode берет режим из имени записи в <inbox>/todo
func InboxMode(inbox string) (Mode, error) {
	entry, err := pickEntry(filepath.Join(inbox, "todo"))
	if err != nil {
		return "", err
	}
	return ParseMode(entry.Name())
}
