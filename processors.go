package runtime

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ProcessXOROne XORs every byte of data with keyByte.
func ProcessXOROne(data []byte, keyByte byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ keyByte
	}
	return out
}

// ProcessXORMany XORs byte i of data with keyBytes[i % len(keyBytes)].
// Fails with InvalidArgument if keyBytes is empty.
func ProcessXORMany(data, keyBytes []byte) ([]byte, error) {
	if len(keyBytes) == 0 {
		return nil, newErr(ErrInvalidArgument, "process_xor_many: key must not be empty")
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ keyBytes[i%len(keyBytes)]
	}
	return out, nil
}

// ProcessRotateLeft rotates each group of groupSize bytes left by amount
// bits (amount is taken mod 8). Only groupSize == 1 is supported: the
// byte order of a rotated multi-byte group is ambiguous, so larger groups
// are rejected with InvalidArgument rather than guessing an endianness.
func ProcessRotateLeft(data []byte, amount int, groupSize int) ([]byte, error) {
	if groupSize != 1 {
		return nil, newErr(ErrInvalidArgument, "process_rotate_left: group_size must be 1, got %d", groupSize)
	}
	amount = ((amount % 8) + 8) % 8
	out := make([]byte, len(data))
	if amount == 0 {
		copy(out, data)
		return out, nil
	}
	for i, b := range data {
		out[i] = (b << uint(amount)) | (b >> uint(8-amount))
	}
	return out, nil
}

// ProcessZlib zlib/deflate-decompresses data in full.
func ProcessZlib(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, wrapErr(ErrDecompression, err, "opening zlib stream")
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapErr(ErrDecompression, err, "inflating zlib stream")
	}
	return out, nil
}
