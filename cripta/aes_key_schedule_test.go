package cripta

import "testing"

// FIPS-197, приложение A.1
func TestExpandKeyFIPS197(t *testing.T) {
	schedule := ExpandKey(hexKey("2b7e151628aed2a6abf7158809cf4f3c"))

	want := map[int]string{
		0:  "2b7e151628aed2a6abf7158809cf4f3c",
		1:  "a0fafe1788542cb123a339392a6c7605",
		2:  "f2c295f27a96b9435935807a7359f67f",
		10: "d014f9a8c9ee2589e13f0cc8b6630ca6",
	}

	for round, hexWant := range want {
		if got := schedule[round]; got != hexBlock(hexWant) {
			t.Errorf("round key %d\ngot:  %x\nwant: %s", round, got, hexWant)
		}
	}
}

func TestExpandKeyAppendixC(t *testing.T) {
	schedule := ExpandKey(hexKey("000102030405060708090a0b0c0d0e0f"))

	if want := hexBlock("13111d7fe3944a17f307a78b4d2b30c5"); schedule[Rounds] != want {
		t.Errorf("round key 10\ngot:  %x\nwant: %x", schedule[Rounds], want)
	}
}

func TestExpandKeyWords(t *testing.T) {
	schedule := ExpandKey(hexKey("2b7e151628aed2a6abf7158809cf4f3c"))
	words := schedule.Words()

	if len(words) != 44 {
		t.Fatalf("len(Words()) = %d, want 44", len(words))
	}

	checks := map[int]uint32{
		0:  0x2b7e1516,
		3:  0x09cf4f3c,
		4:  0xa0fafe17,
		5:  0x88542cb1,
		8:  0xf2c295f2,
		40: 0xd014f9a8,
		43: 0xb6630ca6,
	}
	for i, want := range checks {
		if words[i] != want {
			t.Errorf("W[%d] = %08x, want %08x", i, words[i], want)
		}
	}

	// W[i] = W[i-1] ^ W[i-4] для i не кратных 4
	for i := 4; i < 44; i++ {
		if i%4 != 0 && words[i] != words[i-1]^words[i-4] {
			t.Errorf("W[%d] != W[%d] ^ W[%d]", i, i-1, i-4)
		}
	}
}

func TestExpandKeyDeterministic(t *testing.T) {
	key := hexKey("0123456789abcdef0123456789abcdef")

	first := ExpandKey(key)
	for i := 0; i < 10; i++ {
		if ExpandKey(key) != first {
			t.Fatalf("ExpandKey() differs on call %d", i)
		}
	}

	if NewAES128Cipher(key).RoundKeys() != first {
		t.Error("cipher schedule differs from ExpandKey()")
	}
}

func TestRotWordSubWord(t *testing.T) {
	// FIPS-197 A.1, i = 4
	if got := rotWord(0x09cf4f3c); got != 0xcf4f3c09 {
		t.Errorf("rotWord() = %08x, want cf4f3c09", got)
	}
	if got := subWord(0xcf4f3c09); got != 0x8a84eb01 {
		t.Errorf("subWord() = %08x, want 8a84eb01", got)
	}
}
