package cripta

import (
	"fmt"
)

// AES128Cipher реализует AES-128 (FIPS-197).
// Расписание ключей вычисляется один раз в конструкторе и больше не меняется,
// поэтому один экземпляр можно использовать из нескольких горутин.
type AES128Cipher struct {
	roundKeys KeySchedule
}

// NewAES128Cipher создает шифр и вычисляет раундовые ключи
func NewAES128Cipher(key Key) *AES128Cipher {
	return &AES128Cipher{
		roundKeys: ExpandKey(key),
	}
}

// Encrypt шифрует один блок
func (c *AES128Cipher) Encrypt(plain Block) Block {
	state := plain

	addRoundKey(&state, &c.roundKeys[0])

	for round := 1; round < Rounds; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, &c.roundKeys[round])
	}

	// Финальный раунд (без mixColumns)
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, &c.roundKeys[Rounds])

	return state
}

// Decrypt расшифровывает один блок
func (c *AES128Cipher) Decrypt(cipherBlock Block) Block {
	state := cipherBlock

	addRoundKey(&state, &c.roundKeys[Rounds])

	for round := Rounds - 1; round > 0; round-- {
		invShiftRows(&state)
		invSubBytes(&state)
		addRoundKey(&state, &c.roundKeys[round])
		invMixColumns(&state)
	}

	invShiftRows(&state)
	invSubBytes(&state)
	addRoundKey(&state, &c.roundKeys[0])

	return state
}

// RoundKeys возвращает копию расписания ключей
func (c *AES128Cipher) RoundKeys() KeySchedule {
	return c.roundKeys
}

// EncryptBlock шифрует блок, заданный срезом
func (c *AES128Cipher) EncryptBlock(plainBlock []byte) ([]byte, error) {
	if len(plainBlock) != BlockSize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrBlockSize, BlockSize, len(plainBlock))
	}

	out := c.Encrypt(Block(plainBlock))
	return out[:], nil
}

// DecryptBlock расшифровывает блок, заданный срезом
func (c *AES128Cipher) DecryptBlock(cipherBlock []byte) ([]byte, error) {
	if len(cipherBlock) != BlockSize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrBlockSize, BlockSize, len(cipherBlock))
	}

	out := c.Decrypt(Block(cipherBlock))
	return out[:], nil
}

// GetBlockSize возвращает размер блока
func (c *AES128Cipher) GetBlockSize() int {
	return BlockSize
}
