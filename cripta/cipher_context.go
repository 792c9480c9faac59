package cripta

import (
	"fmt"
	"runtime"
	"sync"
)

type PaddingPolicy int

const (
	// PaddingLenient доверяет последнему байту и не проверяет остальные байты набивки
	PaddingLenient PaddingPolicy = iota
	// PaddingStrict отклоняет набивку, не соответствующую PKCS#7
	PaddingStrict
)

func (p PaddingPolicy) String() string {
	switch p {
	case PaddingLenient:
		return "lenient"
	case PaddingStrict:
		return "strict"
	default:
		return fmt.Sprintf("PaddingPolicy(%d)", int(p))
	}
}

// CipherContext - режим ECB с набивкой PKCS#7 поверх блочного шифра
type CipherContext struct {
	cipher        ISymmetricCipher
	paddingPolicy PaddingPolicy
	blockSize     int
	parallel      bool
	// OnBlock вызывается после обработки каждого блока (только в последовательном режиме)
	OnBlock func(index int)
}

func NewCipherContext(
	cipher ISymmetricCipher,
	paddingPolicy PaddingPolicy,
	parallel bool,
) (*CipherContext, error) {

	if cipher == nil {
		return nil, fmt.Errorf("cipher implementation cannot be nil")
	}

	blockSize := cipher.GetBlockSize()
	if blockSize <= 0 || blockSize > 255 {
		return nil, fmt.Errorf("%w: %d", ErrBlockSize, blockSize)
	}

	return &CipherContext{
		cipher:        cipher,
		paddingPolicy: paddingPolicy,
		blockSize:     blockSize,
		parallel:      parallel,
	}, nil
}

// PadPKCS7 дополняет данные до кратного blockSize. Для выровненных данных
// добавляется полный блок со значением blockSize.
func PadPKCS7(data []uint8, blockSize int) []uint8 {
	paddingLength := blockSize - (len(data) % blockSize)

	padded := make([]uint8, len(data)+paddingLength)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = uint8(paddingLength)
	}

	return padded
}

// UnpadPKCS7 снимает набивку PKCS#7.
// В режиме PaddingLenient последний байт n при n <= blockSize отрезает min(n, len) байт
// без проверки; при n > blockSize данные возвращаются как есть.
func UnpadPKCS7(data []uint8, blockSize int, policy PaddingPolicy) ([]uint8, error) {
	if len(data) == 0 {
		if policy == PaddingStrict {
			return nil, fmt.Errorf("%w: empty data", ErrInvalidPadding)
		}
		return data, nil
	}

	paddingLength := int(data[len(data)-1])

	if policy == PaddingLenient {
		if paddingLength > blockSize {
			return data, nil
		}
		if paddingLength > len(data) {
			paddingLength = len(data)
		}
		return data[:len(data)-paddingLength], nil
	}

	if paddingLength == 0 || paddingLength > blockSize || paddingLength > len(data) {
		return nil, fmt.Errorf("%w: length byte %d", ErrInvalidPadding, paddingLength)
	}
	for i := len(data) - paddingLength; i < len(data); i++ {
		if data[i] != uint8(paddingLength) {
			return nil, fmt.Errorf("%w: byte %d is 0x%02x, want 0x%02x", ErrInvalidPadding, i, data[i], paddingLength)
		}
	}

	return data[:len(data)-paddingLength], nil
}

type blockFunc func([]uint8) ([]uint8, error)

func (ctx *CipherContext) processSequential(input []uint8, fn blockFunc) ([]uint8, error) {
	output := make([]uint8, len(input))

	for i := 0; i*ctx.blockSize < len(input); i++ {
		block := input[i*ctx.blockSize : (i+1)*ctx.blockSize]

		processed, err := fn(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		copy(output[i*ctx.blockSize:], processed)

		if ctx.OnBlock != nil {
			ctx.OnBlock(i)
		}
	}

	return output, nil
}

func (ctx *CipherContext) processParallel(input []uint8, fn blockFunc) ([]uint8, error) {
	numBlocks := len(input) / ctx.blockSize
	output := make([]uint8, len(input))

	numThreads := runtime.NumCPU()
	if numThreads == 0 {
		numThreads = 4
	}
	if numThreads > numBlocks {
		numThreads = numBlocks
	}
	if numThreads == 0 {
		return output, nil
	}

	var wg sync.WaitGroup
	errors := make(chan error, numThreads)

	blocksPerThread := (numBlocks + numThreads - 1) / numThreads

	for t := 0; t < numThreads; t++ {
		startBlock := t * blocksPerThread
		endBlock := startBlock + blocksPerThread
		if endBlock > numBlocks {
			endBlock = numBlocks
		}

		if startBlock >= numBlocks {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			for i := start; i < end; i++ {
				block := input[i*ctx.blockSize : (i+1)*ctx.blockSize]

				processed, err := fn(block)
				if err != nil {
					errors <- fmt.Errorf("block %d: %w", i, err)
					return
				}

				copy(output[i*ctx.blockSize:], processed)
			}
		}(startBlock, endBlock)
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		return nil, err
	}

	return output, nil
}

func (ctx *CipherContext) process(input []uint8, fn blockFunc) ([]uint8, error) {
	if ctx.parallel {
		return ctx.processParallel(input, fn)
	}
	return ctx.processSequential(input, fn)
}

// Encrypt дополняет данные и шифрует каждый блок независимо (ECB)
func (ctx *CipherContext) Encrypt(plaintext []uint8) ([]uint8, error) {
	padded := PadPKCS7(plaintext, ctx.blockSize)

	ciphertext, err := ctx.process(padded, ctx.cipher.EncryptBlock)
	if err != nil {
		return nil, fmt.Errorf("ECB encryption failed: %w", err)
	}

	return ciphertext, nil
}

// Decrypt расшифровывает каждый блок и снимает набивку
func (ctx *CipherContext) Decrypt(ciphertext []uint8) ([]uint8, error) {
	if len(ciphertext)%ctx.blockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrCiphertextLength, len(ciphertext))
	}

	plaintext, err := ctx.process(ciphertext, ctx.cipher.DecryptBlock)
	if err != nil {
		return nil, fmt.Errorf("ECB decryption failed: %w", err)
	}

	return UnpadPKCS7(plaintext, ctx.blockSize, ctx.paddingPolicy)
}

// NumBlocks возвращает число блоков шифртекста для открытого текста длины n
func (ctx *CipherContext) NumBlocks(n int) int {
	return n/ctx.blockSize + 1
}

func (ctx *CipherContext) GetBlockSize() int {
	return ctx.blockSize
}
