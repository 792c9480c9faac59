package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nPaBwaYT/aessim/cripta"
)

// RecoveredName - имя файла с восстановленным секретом в outbox
const RecoveredName = "recovered.txt"

const sharePrefix = "share_"

// ShareName - share_<i>_<имя исходного файла>
func ShareName(index int, source string) string {
	return fmt.Sprintf("%s%d_%s", sharePrefix, index, source)
}

// shareIndex достает i из share_<i>_<имя>
func shareIndex(name string) (int, error) {
	parts := strings.SplitN(strings.TrimPrefix(name, sharePrefix), "_", 2)
	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: bad file name %s", cripta.ErrInvalidShare, name)
	}
	return idx, nil
}

// SplitKeys делит каждый 64-hex секрет из <inbox>/key на numShares долей.
// Файлы с некорректным секретом пропускаются с предупреждением.
func SplitKeys(cfg *Config, log *Logger, threshold, numShares int) ([]string, error) {
	dir := filepath.Join(cfg.InboxDir, "key")
	files, err := visibleFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInboxEmpty, dir)
	}

	var written []string
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return written, fmt.Errorf("failed to read secret: %w", err)
		}

		shares, err := cripta.SplitSecret(string(data), threshold, numShares)
		if errors.Is(err, cripta.ErrInvalidSecret) {
			log.Warn("skipping", f.Name(), err)
			continue
		}
		if err != nil {
			return written, err
		}

		if err := os.MkdirAll(cfg.OutboxDir, 0o755); err != nil {
			return written, fmt.Errorf("failed to create outbox: %w", err)
		}
		for _, s := range shares {
			path := filepath.Join(cfg.OutboxDir, ShareName(s.Index, f.Name()))
			if err := os.WriteFile(path, []byte(s.Hex()), 0o644); err != nil {
				return written, fmt.Errorf("failed to write share: %w", err)
			}
			written = append(written, path)
		}
		log.Info("shares generated", f.Name(), len(shares))
	}

	return written, nil
}

// CombineShares восстанавливает секрет по первым threshold файлам share_*
// из dir и пишет его в <outbox>/recovered.txt
func CombineShares(cfg *Config, log *Logger, dir string, threshold int) (string, error) {
	files, err := visibleFiles(dir)
	if err != nil {
		return "", err
	}

	var shares []cripta.Share
	for _, f := range files {
		if len(shares) >= threshold {
			break
		}
		if !strings.HasPrefix(f.Name(), sharePrefix) {
			continue
		}

		idx, err := shareIndex(f.Name())
		if err != nil {
			return "", err
		}
		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return "", fmt.Errorf("failed to read share: %w", err)
		}
		share, err := cripta.ParseShare(idx, string(data))
		if err != nil {
			return "", err
		}
		shares = append(shares, share)
		log.Debug("share loaded", f.Name())
	}

	secret, err := cripta.RecoverSecret(shares, threshold)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cfg.OutboxDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create outbox: %w", err)
	}
	path := filepath.Join(cfg.OutboxDir, RecoveredName)
	if err := os.WriteFile(path, []byte(secret), 0o644); err != nil {
		return "", fmt.Errorf("failed to write recovered secret: %w", err)
	}
	log.Info("secret recovered", path)

	return path, nil
}
