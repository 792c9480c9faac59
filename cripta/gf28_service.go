package cripta

import (
	"fmt"
	"math/bits"
)

// AESModulus - младшие биты неприводимого полинома x^8 + x^4 + x^3 + x + 1
const AESModulus byte = 0x1B

// xtime умножает элемент GF(2⁸) на x (т.е. на 0x02) по модулю AES
func xtime(b byte) byte {
	shifted := b << 1
	if b&0x80 != 0 {
		shifted ^= AESModulus
	}
	return shifted
}

// Произведения на константы матриц MixColumns / InvMixColumns.
// Все сводятся к суммам xtime.

func mul2(b byte) byte { return xtime(b) }

func mul3(b byte) byte { return xtime(b) ^ b }

func mul9(b byte) byte {
	x8 := xtime(xtime(xtime(b)))
	return x8 ^ b
}

func mul11(b byte) byte {
	x2 := xtime(b)
	x8 := xtime(xtime(x2))
	return x8 ^ x2 ^ b
}

func mul13(b byte) byte {
	x4 := xtime(xtime(b))
	x8 := xtime(x4)
	return x8 ^ x4 ^ b
}

func mul14(b byte) byte {
	x2 := xtime(b)
	x4 := xtime(x2)
	x8 := xtime(x4)
	return x8 ^ x4 ^ x2
}

// GF28Service предоставляет функционал для работы с полем GF(2⁸)
type GF28Service struct {
	modulus byte
}

// NewGF28Service создает новый сервис для работы с GF(2⁸) по заданному модулю
func NewGF28Service(modulus byte) *GF28Service {
	return &GF28Service{modulus: modulus}
}

// Multiply умножает два элемента из GF(2⁸)
func (s *GF28Service) Multiply(a, b byte) byte {
	var result byte

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			result ^= a
		}

		carry := a&0x80 != 0
		a <<= 1
		if carry {
			a ^= s.modulus
		}

		b >>= 1
	}

	return result
}

// Inverse находит обратный элемент: a^(-1) = a^254
func (s *GF28Service) Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, fmt.Errorf("zero element has no inverse")
	}

	result := byte(1)
	base := a
	for exp := 254; exp > 0; exp >>= 1 {
		if exp&1 != 0 {
			result = s.Multiply(result, base)
		}
		base = s.Multiply(base, base)
	}

	if s.Multiply(result, a) != 1 {
		return 0, fmt.Errorf("inverse not found for 0x%02x, modulus 0x%02x is reducible", a, s.modulus)
	}
	return result, nil
}

// AffineTransform выполняет аффинное преобразование S-бокса AES
func AffineTransform(b byte) byte {
	return b ^
		bits.RotateLeft8(b, 1) ^
		bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^
		bits.RotateLeft8(b, 4) ^
		0x63
}

// GenerateSBoxes вычисляет прямой и обратный S-боксы через обращение в поле
// и аффинное преобразование. Используется самопроверкой для сверки с таблицами.
func (s *GF28Service) GenerateSBoxes() (sbox [256]byte, inv [256]byte, err error) {
	for i := 0; i < 256; i++ {
		var x byte
		if i != 0 {
			x, err = s.Inverse(byte(i))
			if err != nil {
				return sbox, inv, err
			}
		}
		sbox[i] = AffineTransform(x)
	}

	for i := 0; i < 256; i++ {
		inv[sbox[i]] = byte(i)
	}

	return sbox, inv, nil
}
