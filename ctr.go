package aes

// Counter mode, NIST SP 800-38A section 6.5. The IV buffer doubles as a
// 128-bit big-endian counter block; each keystream block is the
// encryption of the current counter, and output is plaintext XOR
// keystream. Encryption and decryption are the same transform.

// EncryptCTR XORs src with the counter-mode keystream into dst. Both
// must be the same whole number of blocks. The counter and keystream
// cursor persist in the context, so consecutive calls continue one
// stream. dst and src may be the same slice.
func (c *Cipher) EncryptCTR(dst, src []byte) error {
	if err := checkAligned(dst, src); err != nil {
		return err
	}

	for i := range src {
		if c.streamUsed == BlockSize {
			c.encryptBlock(c.stream[:], c.iv[:])
			c.streamUsed = 0
			c.incrementCounter()
		}
		dst[i] = src[i] ^ c.stream[c.streamUsed]
		c.streamUsed++
	}
	return nil
}

// DecryptCTR is EncryptCTR: XOR with the keystream is its own inverse.
func (c *Cipher) DecryptCTR(dst, src []byte) error {
	return c.EncryptCTR(dst, src)
}

// incrementCounter adds one to the counter block, big-endian, carrying
// from the rightmost byte leftward. Wraps to zero after 2^128-1.
func (c *Cipher) incrementCounter() {
	for i := BlockSize - 1; i >= 0; i-- {
		c.iv[i]++
		if c.iv[i] != 0 {
			break
		}
	}
}
