package cripta

import (
	"encoding/hex"
	"fmt"
)

// Контрольные значения FIPS-197, приложения A.1 и C.1
const (
	katKey        = "000102030405060708090a0b0c0d0e0f"
	katPlaintext  = "00112233445566778899aabbccddeeff"
	katCiphertext = "69c4e0d86a7b0430d8cdb78070b4c55a"

	scheduleKey       = "2b7e151628aed2a6abf7158809cf4f3c"
	scheduleLastRound = "d014f9a8c9ee2589e13f0cc8b6630ca6"
)

func mustBlock(s string) Block {
	var b Block
	data, err := hex.DecodeString(s)
	if err != nil || len(data) != BlockSize {
		panic("cripta: bad built-in vector " + s)
	}
	copy(b[:], data)
	return b
}

// SelfTest проверяет таблицы замены, расписание ключей и известный вектор шифрования
func SelfTest() error {
	sbox, inv, err := NewGF28Service(AESModulus).GenerateSBoxes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTest, err)
	}
	if sbox != sBox {
		return fmt.Errorf("%w: S-box table mismatch", ErrSelfTest)
	}
	if inv != invSBox {
		return fmt.Errorf("%w: inverse S-box table mismatch", ErrSelfTest)
	}

	schedule := ExpandKey(Key(mustBlock(scheduleKey)))
	if schedule[Rounds] != mustBlock(scheduleLastRound) {
		return fmt.Errorf("%w: round key %d is %x", ErrSelfTest, Rounds, schedule[Rounds])
	}

	c := NewAES128Cipher(Key(mustBlock(katKey)))
	plain := mustBlock(katPlaintext)
	want := mustBlock(katCiphertext)

	if got := c.Encrypt(plain); got != want {
		return fmt.Errorf("%w: encrypt got %x, want %x", ErrSelfTest, got, want)
	}
	if got := c.Decrypt(want); got != plain {
		return fmt.Errorf("%w: decrypt got %x, want %x", ErrSelfTest, got, plain)
	}

	return nil
}
