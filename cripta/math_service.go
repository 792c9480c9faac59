package cripta

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// BigModExp вычисляет a^b mod m для big.Int
func BigModExp(a, b, m *big.Int) *big.Int {
	return new(big.Int).Exp(a, b, m)
}

// BigModularInverse вычисляет обратный элемент по модулю для big.Int
func BigModularInverse(a, m *big.Int) (*big.Int, bool) {
	result := new(big.Int).ModInverse(a, m)
	if result == nil {
		return nil, false
	}
	return result, true
}

// BigRandomBelow возвращает случайное число из [0, max)
func BigRandomBelow(max *big.Int) (*big.Int, error) {
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, fmt.Errorf("failed to generate random number: %w", err)
	}
	return n, nil
}
