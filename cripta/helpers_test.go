package cripta

import (
	"encoding/hex"
	"math/rand"
)

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func hexBlock(s string) Block {
	return Block(mustDecodeHex(s))
}

func hexKey(s string) Key {
	return Key(mustDecodeHex(s))
}

func randomBlock(r *rand.Rand) Block {
	var b Block
	r.Read(b[:])
	return b
}
