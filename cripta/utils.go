package cripta

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseHexKey декодирует hex-строку ключа. Допускается 16 или 32 байта,
// для AES-128 используются первые 16.
func ParseHexKey(hexStr string) (Key, error) {
	key, _, err := DecodeHexKey(hexStr)
	return key, err
}

// DecodeHexKey работает как ParseHexKey и дополнительно возвращает
// число декодированных байт (16 или 32)
func DecodeHexKey(hexStr string) (Key, int, error) {
	var key Key

	data, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return key, 0, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	if len(data) != 16 && len(data) != 32 {
		return key, len(data), fmt.Errorf("%w: expected 16 or 32 bytes, got %d", ErrInvalidKeyLength, len(data))
	}

	copy(key[:], data[:KeySize])
	return key, len(data), nil
}

// GenerateRandomBytes заполняет data криптостойкими случайными байтами
func GenerateRandomBytes(data []byte) (int, error) {
	return rand.Read(data)
}

// GenerateKey возвращает случайный ключ
func GenerateKey() (Key, error) {
	var key Key
	if _, err := GenerateRandomBytes(key[:]); err != nil {
		return key, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// HumanSize переводит число байт в строку вида "1.50 KB"
func HumanSize(bytes int) string {
	const (
		kb = 1024.0
		mb = kb * 1024
		gb = mb * 1024
	)

	size := float64(bytes)
	switch {
	case size >= gb:
		return fmt.Sprintf("%.2f GB", size/gb)
	case size >= mb:
		return fmt.Sprintf("%.2f MB", size/mb)
	case size >= kb:
		return fmt.Sprintf("%.2f KB", size/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
