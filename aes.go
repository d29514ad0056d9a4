// Package aes provides a pure-Go implementation of the AES block cipher
// (FIPS-197) together with the ECB, CBC and CTR modes of operation from
// NIST SP 800-38A.
//
// The package is self-contained and intended for embedding in larger
// systems that need a specification-exact cipher primitive. It implements
// the raw, unauthenticated block and mode transforms only: padding,
// authentication and IV/nonce management policy belong to the caller.
//
// Example usage:
//
//	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
//	iv, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
//	c, err := aes.NewWithIV(aes.AES128, key, iv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ct := make([]byte, len(pt))
//	if err := c.EncryptCBC(ct, pt); err != nil {
//	    log.Fatal(err)
//	}
//
// This implementation is not hardened against cache-timing side channels;
// use crypto/aes where that matters.
package aes

import (
	"errors"
	"fmt"
)

// BlockSize is the AES block size in bytes, fixed for all key sizes.
const BlockSize = 16

// expandedKeyMax is the expanded key length of the largest variant
// (AES-256: 16 * (14+1) bytes). Smaller variants use a prefix of it.
const expandedKeyMax = 240

// KeySize selects one of the three AES key variants.
type KeySize int

const (
	// AES128 uses a 16-byte key and 10 rounds.
	AES128 KeySize = 128

	// AES192 uses a 24-byte key and 12 rounds.
	AES192 KeySize = 192

	// AES256 uses a 32-byte key and 14 rounds.
	AES256 KeySize = 256
)

// String returns the string representation of the key size.
func (k KeySize) String() string {
	switch k {
	case AES128:
		return "AES-128"
	case AES192:
		return "AES-192"
	case AES256:
		return "AES-256"
	default:
		return fmt.Sprintf("KeySize(%d)", int(k))
	}
}

// valid reports whether k is one of the three supported variants.
func (k KeySize) valid() bool {
	return k == AES128 || k == AES192 || k == AES256
}

// Length returns the raw key length in bytes.
func (k KeySize) Length() int { return int(k) / 8 }

// words returns Nk, the key length in 32-bit words.
func (k KeySize) words() int { return int(k) / 32 }

// rounds returns Nr, the number of cipher rounds.
func (k KeySize) rounds() int {
	switch k {
	case AES192:
		return 12
	case AES256:
		return 14
	default:
		return 10
	}
}

// expandedLength returns the number of expanded key bytes the key
// schedule produces: one 16-byte round key per round plus one.
func (k KeySize) expandedLength() int { return BlockSize * (k.rounds() + 1) }

// Error taxonomy. Every failure is a caller-contract violation detected
// before any transformation begins; a failed call never produces partial
// output or mutates the context.
var (
	// ErrInvalidKeySize is returned when the KeySize value is not one of
	// AES128, AES192 or AES256.
	ErrInvalidKeySize = errors.New("aes: invalid key size")

	// ErrInvalidKeyLength is returned when the raw key length does not
	// match the selected key size.
	ErrInvalidKeyLength = errors.New("aes: invalid key length")

	// ErrInvalidIVLength is returned when an IV or initial counter is not
	// exactly 16 bytes.
	ErrInvalidIVLength = errors.New("aes: invalid IV length")

	// ErrBlockLength is returned by the single-block functions when either
	// buffer is not exactly 16 bytes.
	ErrBlockLength = errors.New("aes: buffer is not a single block")

	// ErrNotBlockAligned is returned by the multi-block functions when a
	// buffer length is not a multiple of 16 bytes or the input and output
	// lengths differ.
	ErrNotBlockAligned = errors.New("aes: input not full blocks")
)

// Cipher is an AES cipher context: an expanded key plus the mutable
// chaining state used by the CBC and CTR modes.
//
// A Cipher is owned by its caller and is not safe for concurrent use.
// CBC and CTR calls mutate the IV/counter so a stream can continue across
// calls; use one Cipher per logical stream, or serialize access.
type Cipher struct {
	size KeySize

	// roundKeys holds the expanded key schedule. Sized for the largest
	// variant; only the first size.expandedLength() bytes are meaningful.
	roundKeys [expandedKeyMax]byte

	// iv is the CBC chaining value, or the CTR counter block.
	iv [BlockSize]byte

	// state is the 4x4 scratch matrix the round engine works on. It is
	// transient per block and carries no meaning between calls.
	state [4][4]byte

	// CTR keystream buffer and cursor. streamUsed == BlockSize marks the
	// buffer exhausted, forcing generation on first use.
	stream     [BlockSize]byte
	streamUsed int
}

// New creates a cipher context for the given key size and raw key,
// expanding the key schedule once. The IV/counter starts zeroed; set it
// with SetIV or use NewWithIV before CBC/CTR operations.
func New(size KeySize, key []byte) (*Cipher, error) {
	if !size.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, int(size))
	}
	if len(key) != size.Length() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %v",
			ErrInvalidKeyLength, len(key), size.Length(), size)
	}

	c := &Cipher{size: size, streamUsed: BlockSize}
	c.expandKey(key)
	return c, nil
}

// NewWithIV creates a cipher context and sets the initial IV (CBC) or
// counter block (CTR) in one step.
func NewWithIV(size KeySize, key, iv []byte) (*Cipher, error) {
	c, err := New(size, key)
	if err != nil {
		return nil, err
	}
	if err := c.SetIV(iv); err != nil {
		return nil, err
	}
	return c, nil
}

// KeySize returns the key variant this context was initialized with.
func (c *Cipher) KeySize() KeySize { return c.size }

// SetIV replaces the IV (CBC) or counter block (CTR) and discards any
// buffered CTR keystream, starting a fresh stream.
func (c *Cipher) SetIV(iv []byte) error {
	if len(iv) != BlockSize {
		return fmt.Errorf("%w: got %d bytes, want %d",
			ErrInvalidIVLength, len(iv), BlockSize)
	}
	copy(c.iv[:], iv)
	c.streamUsed = BlockSize
	return nil
}

// IV returns a copy of the current IV/counter block. After a CBC call it
// is the last ciphertext block; after a CTR call it is the next unused
// counter value.
func (c *Cipher) IV() [BlockSize]byte { return c.iv }

// checkAligned validates the shared multi-block contract: equal-length
// buffers, both a whole number of blocks.
func checkAligned(dst, src []byte) error {
	if len(src)%BlockSize != 0 {
		return fmt.Errorf("%w: input is %d bytes", ErrNotBlockAligned, len(src))
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: output is %d bytes, input %d",
			ErrNotBlockAligned, len(dst), len(src))
	}
	return nil
}
