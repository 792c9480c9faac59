package cripta

import (
	"bytes"
	"crypto/aes"
	"errors"
	"math/rand"
	"sync"
	"testing"
)

// Векторы FIPS-197, приложения B и C.1
func TestAES128KnownAnswer(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		plaintext  string
		ciphertext string
	}{
		{
			name:       "FIPS-197 C.1",
			key:        "000102030405060708090a0b0c0d0e0f",
			plaintext:  "00112233445566778899aabbccddeeff",
			ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			name:       "FIPS-197 B",
			key:        "2b7e151628aed2a6abf7158809cf4f3c",
			plaintext:  "3243f6a8885a308d313198a2e0370734",
			ciphertext: "3925841d02dc09fbdc118597196a0b32",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAES128Cipher(hexKey(tt.key))
			plain := hexBlock(tt.plaintext)
			want := hexBlock(tt.ciphertext)

			if got := c.Encrypt(plain); got != want {
				t.Errorf("Encrypt()\ngot:  %x\nwant: %x", got, want)
			}
			if got := c.Decrypt(want); got != plain {
				t.Errorf("Decrypt()\ngot:  %x\nwant: %x", got, plain)
			}
		})
	}
}

func TestAES128RoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(197))

	for i := 0; i < 200; i++ {
		key := Key(randomBlock(r))
		plain := randomBlock(r)

		c := NewAES128Cipher(key)
		if got := c.Decrypt(c.Encrypt(plain)); got != plain {
			t.Fatalf("round trip failed for key %x block %x: got %x", key, plain, got)
		}
	}
}

func TestAES128MatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		key := Key(randomBlock(r))
		plain := randomBlock(r)

		ref, err := aes.NewCipher(key[:])
		if err != nil {
			t.Fatalf("aes.NewCipher() failed: %v", err)
		}
		want := make([]byte, BlockSize)
		ref.Encrypt(want, plain[:])

		got := NewAES128Cipher(key).Encrypt(plain)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("key %x block %x\ngot:  %x\nwant: %x", key, plain, got, want)
		}
	}
}

// Для фиксированного ключа шифрование - биекция: разные блоки дают разные шифртексты
func TestAES128DistinctBlocksDistinctCiphertexts(t *testing.T) {
	c := NewAES128Cipher(hexKey("000102030405060708090a0b0c0d0e0f"))
	seen := make(map[Block]Block)

	for i := 0; i < 256; i++ {
		for _, pos := range []int{0, 7, 15} {
			var plain Block
			plain[pos] = byte(i)

			ct := c.Encrypt(plain)
			if prev, ok := seen[ct]; ok && prev != plain {
				t.Fatalf("collision: %x and %x both encrypt to %x", prev, plain, ct)
			}
			seen[ct] = plain
		}
	}
}

func TestAES128DoesNotModifyInput(t *testing.T) {
	c := NewAES128Cipher(hexKey("000102030405060708090a0b0c0d0e0f"))
	in := mustDecodeHex("00112233445566778899aabbccddeeff")
	orig := append([]byte(nil), in...)

	if _, err := c.EncryptBlock(in); err != nil {
		t.Fatalf("EncryptBlock() failed: %v", err)
	}
	if !bytes.Equal(in, orig) {
		t.Errorf("input modified: %x", in)
	}
}

func TestAES128SliceAdapters(t *testing.T) {
	c := NewAES128Cipher(hexKey("000102030405060708090a0b0c0d0e0f"))

	ct, err := c.EncryptBlock(mustDecodeHex("00112233445566778899aabbccddeeff"))
	if err != nil {
		t.Fatalf("EncryptBlock() failed: %v", err)
	}
	if want := mustDecodeHex("69c4e0d86a7b0430d8cdb78070b4c55a"); !bytes.Equal(ct, want) {
		t.Errorf("EncryptBlock()\ngot:  %x\nwant: %x", ct, want)
	}

	pt, err := c.DecryptBlock(ct)
	if err != nil {
		t.Fatalf("DecryptBlock() failed: %v", err)
	}
	if want := mustDecodeHex("00112233445566778899aabbccddeeff"); !bytes.Equal(pt, want) {
		t.Errorf("DecryptBlock()\ngot:  %x\nwant: %x", pt, want)
	}

	for _, size := range []int{0, 15, 17, 32} {
		if _, err := c.EncryptBlock(make([]byte, size)); !errors.Is(err, ErrBlockSize) {
			t.Errorf("EncryptBlock(%d bytes) error = %v, want ErrBlockSize", size, err)
		}
		if _, err := c.DecryptBlock(make([]byte, size)); !errors.Is(err, ErrBlockSize) {
			t.Errorf("DecryptBlock(%d bytes) error = %v, want ErrBlockSize", size, err)
		}
	}
}

func TestAES128ConcurrentUse(t *testing.T) {
	c := NewAES128Cipher(hexKey("000102030405060708090a0b0c0d0e0f"))
	plain := hexBlock("00112233445566778899aabbccddeeff")
	want := hexBlock("69c4e0d86a7b0430d8cdb78070b4c55a")

	var wg sync.WaitGroup
	failures := make(chan Block, 16)

	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				ct := c.Encrypt(plain)
				if ct != want {
					failures <- ct
					return
				}
				if c.Decrypt(ct) != plain {
					failures <- ct
					return
				}
			}
		}()
	}

	wg.Wait()
	close(failures)

	for ct := range failures {
		t.Errorf("concurrent Encrypt() got %x, want %x", ct, want)
	}
}

func BenchmarkAES128Encrypt(b *testing.B) {
	c := NewAES128Cipher(hexKey("000102030405060708090a0b0c0d0e0f"))
	block := hexBlock("00112233445566778899aabbccddeeff")

	b.SetBytes(BlockSize)
	for i := 0; i < b.N; i++ {
		block = c.Encrypt(block)
	}
}

func BenchmarkAES128Decrypt(b *testing.B) {
	c := NewAES128Cipher(hexKey("000102030405060708090a0b0c0d0e0f"))
	block := hexBlock("69c4e0d86a7b0430d8cdb78070b4c55a")

	b.SetBytes(BlockSize)
	for i := 0; i < b.N; i++ {
		block = c.Decrypt(block)
	}
}
