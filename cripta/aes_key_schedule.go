package cripta

import "encoding/binary"

const (
	// BlockSize - размер блока AES в байтах
	BlockSize = 16
	// KeySize - размер ключа AES-128 в байтах
	KeySize = 16
	// Rounds - число раундов AES-128
	Rounds = 10

	nk = KeySize / 4
	nb = BlockSize / 4
)

// Block - состояние 4x4, заполненное по столбцам:
// байт 0 - строка 0/столбец 0, байт 1 - строка 1/столбец 0, ..., байт 4 - строка 0/столбец 1
type Block [BlockSize]byte

// Key - мастер-ключ AES-128
type Key [KeySize]byte

// KeySchedule - 11 раундовых ключей, вычисленных из мастер-ключа
type KeySchedule [Rounds + 1]Block

// ExpandKey разворачивает ключ в 44 слова и раскладывает их в раундовые ключи
func ExpandKey(key Key) KeySchedule {
	var w [nb * (Rounds + 1)]uint32

	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	for i := nk; i < len(w); i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp)) ^ uint32(rcon[i/nk])<<24
		}
		w[i] = w[i-nk] ^ temp
	}

	var schedule KeySchedule
	for r := range schedule {
		for c := 0; c < nb; c++ {
			binary.BigEndian.PutUint32(schedule[r][4*c:], w[4*r+c])
		}
	}

	return schedule
}

// Words возвращает расписание в виде 44 слов W[0..43]
func (ks *KeySchedule) Words() []uint32 {
	words := make([]uint32, 0, nb*len(ks))
	for r := range ks {
		for c := 0; c < nb; c++ {
			words = append(words, binary.BigEndian.Uint32(ks[r][4*c:]))
		}
	}
	return words
}

// rotWord: циклический сдвиг слова влево на один байт
func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

// subWord применяет S-бокс к каждому байту слова
func subWord(w uint32) uint32 {
	return uint32(sBox[w>>24])<<24 |
		uint32(sBox[w>>16&0xff])<<16 |
		uint32(sBox[w>>8&0xff])<<8 |
		uint32(sBox[w&0xff])
}
