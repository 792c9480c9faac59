package cripta

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// SecretHexLen - длина разделяемого секрета в hex-символах (256 бит)
const SecretHexLen = 64

var (
	ErrInvalidSecret      = errors.New("secret must be exactly 64 hex characters")
	ErrInvalidThreshold   = errors.New("invalid threshold")
	ErrInsufficientShares = errors.New("insufficient shares")
	ErrInvalidShare       = errors.New("invalid share")
)

// SharePrime - простое Мерсенна 2^521 - 1, больше любого 256-битного секрета.
// 2^257 - 1 составное и полем не является.
var SharePrime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 521), big.NewInt(1))

// Share - точка (Index, Value) многочлена над GF(SharePrime)
type Share struct {
	Index int
	Value *big.Int
}

// Hex возвращает значение доли в hex без ведущих нулей
func (s Share) Hex() string {
	return s.Value.Text(16)
}

// ParseShare разбирает значение доли из hex
func ParseShare(index int, hexValue string) (Share, error) {
	if index < 1 {
		return Share{}, fmt.Errorf("%w: index %d", ErrInvalidShare, index)
	}

	value, ok := new(big.Int).SetString(strings.TrimSpace(hexValue), 16)
	if !ok || value.Sign() < 0 || value.Cmp(SharePrime) >= 0 {
		return Share{}, fmt.Errorf("%w: share %d is not a field element", ErrInvalidShare, index)
	}
	return Share{Index: index, Value: value}, nil
}

// SplitSecret делит 64-hex секрет на numShares долей, любые threshold из которых
// восстанавливают секрет. Доли имеют индексы 1..numShares.
func SplitSecret(hexSecret string, threshold, numShares int) ([]Share, error) {
	hexSecret = strings.TrimSpace(hexSecret)
	if len(hexSecret) != SecretHexLen {
		return nil, fmt.Errorf("%w: got %d characters", ErrInvalidSecret, len(hexSecret))
	}
	secret, ok := new(big.Int).SetString(hexSecret, 16)
	if !ok || strings.ContainsAny(hexSecret, "+-") {
		return nil, fmt.Errorf("%w: not hex", ErrInvalidSecret)
	}

	if threshold < 1 || numShares < 1 {
		return nil, fmt.Errorf("%w: threshold and num_shares must be positive", ErrInvalidThreshold)
	}
	if threshold > numShares {
		return nil, fmt.Errorf("%w: threshold %d > num_shares %d", ErrInvalidThreshold, threshold, numShares)
	}

	coeffs := make([]*big.Int, threshold)
	coeffs[0] = secret
	for i := 1; i < threshold; i++ {
		c, err := BigRandomBelow(SharePrime)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	shares := make([]Share, 0, numShares)
	for x := 1; x <= numShares; x++ {
		shares = append(shares, Share{Index: x, Value: evalPolynomial(coeffs, big.NewInt(int64(x)))})
	}

	return shares, nil
}

// evalPolynomial считает sum(c_k * x^k) mod p
func evalPolynomial(coeffs []*big.Int, x *big.Int) *big.Int {
	y := new(big.Int)
	for k, c := range coeffs {
		term := BigModExp(x, big.NewInt(int64(k)), SharePrime)
		term.Mul(term, c)
		y.Add(y, term)
	}
	return y.Mod(y, SharePrime)
}

// RecoverSecret восстанавливает секрет интерполяцией Лагранжа в нуле по первым
// threshold долям и возвращает его как 64 hex-символа.
func RecoverSecret(shares []Share, threshold int) (string, error) {
	if threshold < 1 {
		return "", fmt.Errorf("%w: threshold must be at least 1", ErrInvalidThreshold)
	}
	if len(shares) < threshold {
		return "", fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, threshold, len(shares))
	}

	subset := shares[:threshold]
	seen := make(map[int]bool, threshold)
	for _, s := range subset {
		if s.Index < 1 || s.Value == nil {
			return "", fmt.Errorf("%w: index %d", ErrInvalidShare, s.Index)
		}
		if seen[s.Index] {
			return "", fmt.Errorf("%w: duplicate index %d", ErrInvalidShare, s.Index)
		}
		seen[s.Index] = true
	}

	secret := new(big.Int)
	for i, si := range subset {
		num := big.NewInt(1)
		den := big.NewInt(1)
		xi := big.NewInt(int64(si.Index))

		for j, sj := range subset {
			if i == j {
				continue
			}
			xj := big.NewInt(int64(sj.Index))
			// (0 - xj) и (xi - xj)
			num.Mul(num, new(big.Int).Neg(xj))
			num.Mod(num, SharePrime)
			den.Mul(den, new(big.Int).Sub(xi, xj))
			den.Mod(den, SharePrime)
		}

		inv, ok := BigModularInverse(den, SharePrime)
		if !ok {
			return "", fmt.Errorf("%w: non-invertible denominator", ErrInvalidShare)
		}

		term := new(big.Int).Mul(si.Value, num)
		term.Mul(term, inv)
		secret.Add(secret, term)
		secret.Mod(secret, SharePrime)
	}

	if secret.BitLen() > 4*SecretHexLen {
		return "", fmt.Errorf("%w: recovered value exceeds 256 bits", ErrInvalidShare)
	}
	return fmt.Sprintf("%064x", secret), nil
}
