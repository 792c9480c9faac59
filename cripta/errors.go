package cripta

import "errors"

var (
	ErrMalformedKey     = errors.New("malformed key encoding")
	ErrInvalidKeyLength = errors.New("invalid key length")
	ErrCiphertextLength = errors.New("ciphertext length is not a multiple of block size")
	ErrUnknownMode      = errors.New("unknown operation mode")
	ErrInvalidPadding   = errors.New("invalid padding")
	ErrBlockSize        = errors.New("invalid block size")
	ErrSelfTest         = errors.New("self test failed")
)
