package cripta

type ISymmetricCipher interface {
	GetBlockSize() int
	EncryptBlock(plainBlock []uint8) ([]uint8, error)
	DecryptBlock(cipherBlock []uint8) ([]uint8, error)
}
