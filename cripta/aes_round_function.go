package cripta

// subBytes применяет S-бокс к каждому байту состояния
func subBytes(state *Block) {
	for i := range state {
		state[i] = sBox[state[i]]
	}
}

// invSubBytes применяет обратный S-бокс
func invSubBytes(state *Block) {
	for i := range state {
		state[i] = invSBox[state[i]]
	}
}

// shiftRows: строка r циклически сдвигается влево на r позиций
func shiftRows(state *Block) {
	old := *state
	for r := 1; r < 4; r++ {
		for c := 0; c < nb; c++ {
			state[r+4*c] = old[r+4*((c+r)%nb)]
		}
	}
}

// invShiftRows: строка r циклически сдвигается вправо на r позиций
func invShiftRows(state *Block) {
	old := *state
	for r := 1; r < 4; r++ {
		for c := 0; c < nb; c++ {
			state[r+4*((c+r)%nb)] = old[r+4*c]
		}
	}
}

// mixColumns умножает каждый столбец на матрицу
// [2 3 1 1; 1 2 3 1; 1 1 2 3; 3 1 1 2]
func mixColumns(state *Block) {
	for i := 0; i < BlockSize; i += 4 {
		s0, s1, s2, s3 := state[i], state[i+1], state[i+2], state[i+3]

		state[i] = mul2(s0) ^ mul3(s1) ^ s2 ^ s3
		state[i+1] = s0 ^ mul2(s1) ^ mul3(s2) ^ s3
		state[i+2] = s0 ^ s1 ^ mul2(s2) ^ mul3(s3)
		state[i+3] = mul3(s0) ^ s1 ^ s2 ^ mul2(s3)
	}
}

// invMixColumns умножает каждый столбец на обратную матрицу
// [14 11 13 9; 9 14 11 13; 13 9 14 11; 11 13 9 14]
func invMixColumns(state *Block) {
	for i := 0; i < BlockSize; i += 4 {
		s0, s1, s2, s3 := state[i], state[i+1], state[i+2], state[i+3]

		state[i] = mul14(s0) ^ mul11(s1) ^ mul13(s2) ^ mul9(s3)
		state[i+1] = mul9(s0) ^ mul14(s1) ^ mul11(s2) ^ mul13(s3)
		state[i+2] = mul13(s0) ^ mul9(s1) ^ mul14(s2) ^ mul11(s3)
		state[i+3] = mul11(s0) ^ mul13(s1) ^ mul9(s2) ^ mul14(s3)
	}
}

// addRoundKey складывает состояние с раундовым ключом
func addRoundKey(state *Block, roundKey *Block) {
	for i := range state {
		state[i] ^= roundKey[i]
	}
}
