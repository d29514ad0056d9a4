package aes

// Cipher block chaining, NIST SP 800-38A section 6.2. Each plaintext
// block is XORed with the previous ciphertext block before encryption,
// with the caller-supplied IV standing in for "block -1".

// EncryptCBC encrypts src into dst in CBC mode. Both must be the same
// whole number of blocks. The context's IV is updated to the last
// ciphertext block, so consecutive calls continue one stream.
// dst and src may be the same slice.
func (c *Cipher) EncryptCBC(dst, src []byte) error {
	if err := checkAligned(dst, src); err != nil {
		return err
	}

	for len(src) > 0 {
		for i := 0; i < BlockSize; i++ {
			c.iv[i] ^= src[i]
		}
		c.encryptBlock(c.iv[:], c.iv[:])
		copy(dst[:BlockSize], c.iv[:])

		src = src[BlockSize:]
		dst = dst[BlockSize:]
	}
	return nil
}

// DecryptCBC decrypts src into dst in CBC mode. Both must be the same
// whole number of blocks. The context's IV is updated to the last
// ciphertext block consumed. dst and src may be the same slice; each
// ciphertext block is saved before the plaintext overwrites it.
func (c *Cipher) DecryptCBC(dst, src []byte) error {
	if err := checkAligned(dst, src); err != nil {
		return err
	}

	var ct [BlockSize]byte
	for len(src) > 0 {
		copy(ct[:], src[:BlockSize])

		c.decryptBlock(dst[:BlockSize], src[:BlockSize])
		for i := 0; i < BlockSize; i++ {
			dst[i] ^= c.iv[i]
		}
		c.iv = ct

		src = src[BlockSize:]
		dst = dst[BlockSize:]
	}
	return nil
}
