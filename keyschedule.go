package aes

// Key schedule expansion, FIPS-197 section 5.2.

// expandKey fills c.roundKeys from the raw key. The schedule is a
// sequence of 4-byte words; the first Nk words are the key itself, and
// word i is word[i-Nk] XOR a transform of word[i-1].
func (c *Cipher) expandKey(key []byte) {
	nk := c.size.words()
	nr := c.size.rounds()

	copy(c.roundKeys[:nk*4], key)

	var tmp [4]byte
	for i := nk; i < 4*(nr+1); i++ {
		copy(tmp[:], c.roundKeys[(i-1)*4:i*4])

		if i%nk == 0 {
			// RotWord: cyclic left rotation by one byte.
			tmp[0], tmp[1], tmp[2], tmp[3] = tmp[1], tmp[2], tmp[3], tmp[0]

			// SubWord then fold in the round constant.
			tmp[0] = sbox[tmp[0]] ^ rcon[i/nk]
			tmp[1] = sbox[tmp[1]]
			tmp[2] = sbox[tmp[2]]
			tmp[3] = sbox[tmp[3]]
		} else if nk > 6 && i%nk == 4 {
			// AES-256 only: extra SubWord without rotation or rcon.
			tmp[0] = sbox[tmp[0]]
			tmp[1] = sbox[tmp[1]]
			tmp[2] = sbox[tmp[2]]
			tmp[3] = sbox[tmp[3]]
		}

		for j := 0; j < 4; j++ {
			c.roundKeys[i*4+j] = c.roundKeys[(i-nk)*4+j] ^ tmp[j]
		}
	}
}
