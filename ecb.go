package aes

// Electronic codebook: the raw single-block primitive. Deterministic by
// construction (equal plaintext blocks under one key give equal
// ciphertext blocks), which is also why ECB alone is unsuitable for
// structured data; callers wanting semantic security use CBC or CTR.

// EncryptECB encrypts exactly one 16-byte block from src into dst.
// dst and src may be the same slice.
func (c *Cipher) EncryptECB(dst, src []byte) error {
	if err := checkBlock(dst, src); err != nil {
		return err
	}
	c.encryptBlock(dst, src)
	return nil
}

// DecryptECB decrypts exactly one 16-byte block from src into dst.
// dst and src may be the same slice.
func (c *Cipher) DecryptECB(dst, src []byte) error {
	if err := checkBlock(dst, src); err != nil {
		return err
	}
	c.decryptBlock(dst, src)
	return nil
}

func checkBlock(dst, src []byte) error {
	if len(src) != BlockSize {
		return ErrBlockLength
	}
	if len(dst) != BlockSize {
		return ErrBlockLength
	}
	return nil
}
