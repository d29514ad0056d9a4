package aes

// Round transform engine: the forward and inverse ciphers of FIPS-197
// section 5, operating in place on the context's 4x4 state matrix.
//
// The state uses the column-major layout state[col][row] = block[col*4+row].
// The same mapping is used for block loading, AddRoundKey and the
// MixColumns column walk, which is what the test vectors actually pin down.

// xtime multiplies by x (0x02) in GF(2^8) with reduction polynomial 0x11b.
func xtime(b byte) byte {
	return (b << 1) ^ (((b >> 7) & 1) * 0x1b)
}

// gmul multiplies two field elements by repeated doubling and
// conditional XOR. Only used by invMixColumns, where the constants
// {0x0e, 0x0b, 0x0d, 0x09} need more than xtime chains.
func gmul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

// loadState maps a 16-byte block into the state matrix.
func (c *Cipher) loadState(block []byte) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			c.state[col][row] = block[col*4+row]
		}
	}
}

// storeState maps the state matrix back to a 16-byte block.
func (c *Cipher) storeState(block []byte) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			block[col*4+row] = c.state[col][row]
		}
	}
}

// addRoundKey XORs the round's 16-byte key slice into the state.
func (c *Cipher) addRoundKey(round int) {
	rk := c.roundKeys[round*BlockSize : (round+1)*BlockSize]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			c.state[col][row] ^= rk[col*4+row]
		}
	}
}

// subBytes substitutes every state byte through the forward S-box.
func (c *Cipher) subBytes() {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			c.state[col][row] = sbox[c.state[col][row]]
		}
	}
}

// invSubBytes substitutes every state byte through the inverse S-box.
func (c *Cipher) invSubBytes() {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			c.state[col][row] = invSbox[c.state[col][row]]
		}
	}
}

// shiftRows rotates row r left by r positions across the columns.
func (c *Cipher) shiftRows() {
	s := &c.state

	// Row 1: left by 1.
	s[0][1], s[1][1], s[2][1], s[3][1] = s[1][1], s[2][1], s[3][1], s[0][1]

	// Row 2: left by 2.
	s[0][2], s[1][2], s[2][2], s[3][2] = s[2][2], s[3][2], s[0][2], s[1][2]

	// Row 3: left by 3.
	s[0][3], s[1][3], s[2][3], s[3][3] = s[3][3], s[0][3], s[1][3], s[2][3]
}

// invShiftRows rotates row r right by r positions.
func (c *Cipher) invShiftRows() {
	s := &c.state

	s[0][1], s[1][1], s[2][1], s[3][1] = s[3][1], s[0][1], s[1][1], s[2][1]
	s[0][2], s[1][2], s[2][2], s[3][2] = s[2][2], s[3][2], s[0][2], s[1][2]
	s[0][3], s[1][3], s[2][3], s[3][3] = s[1][3], s[2][3], s[3][3], s[0][3]
}

// mixColumns applies the {02,03,01,01} diffusion matrix to each column.
// 03*b is computed as xtime(b) ^ b; the full column transform reduces to
// the standard xtime-and-XOR form.
func (c *Cipher) mixColumns() {
	for col := 0; col < 4; col++ {
		s := &c.state[col]
		t := s[0]
		all := s[0] ^ s[1] ^ s[2] ^ s[3]

		s[0] ^= all ^ xtime(s[0]^s[1])
		s[1] ^= all ^ xtime(s[1]^s[2])
		s[2] ^= all ^ xtime(s[2]^s[3])
		s[3] ^= all ^ xtime(s[3]^t)
	}
}

// invMixColumns applies the inverse matrix {0e,0b,0d,09} to each column.
func (c *Cipher) invMixColumns() {
	for col := 0; col < 4; col++ {
		s := &c.state[col]
		a, b, cc, d := s[0], s[1], s[2], s[3]

		s[0] = gmul(a, 0x0e) ^ gmul(b, 0x0b) ^ gmul(cc, 0x0d) ^ gmul(d, 0x09)
		s[1] = gmul(a, 0x09) ^ gmul(b, 0x0e) ^ gmul(cc, 0x0b) ^ gmul(d, 0x0d)
		s[2] = gmul(a, 0x0d) ^ gmul(b, 0x09) ^ gmul(cc, 0x0e) ^ gmul(d, 0x0b)
		s[3] = gmul(a, 0x0b) ^ gmul(b, 0x0d) ^ gmul(cc, 0x09) ^ gmul(d, 0x0e)
	}
}

// encryptBlock runs the forward cipher on one block. The final round
// skips MixColumns, per FIPS-197.
func (c *Cipher) encryptBlock(dst, src []byte) {
	nr := c.size.rounds()

	c.loadState(src)
	c.addRoundKey(0)

	for round := 1; round < nr; round++ {
		c.subBytes()
		c.shiftRows()
		c.mixColumns()
		c.addRoundKey(round)
	}

	c.subBytes()
	c.shiftRows()
	c.addRoundKey(nr)
	c.storeState(dst)
}

// decryptBlock runs the inverse cipher on one block. Round 0 skips
// InvMixColumns, mirroring the forward cipher's final round.
func (c *Cipher) decryptBlock(dst, src []byte) {
	nr := c.size.rounds()

	c.loadState(src)
	c.addRoundKey(nr)

	for round := nr - 1; round > 0; round-- {
		c.invShiftRows()
		c.invSubBytes()
		c.addRoundKey(round)
		c.invMixColumns()
	}

	c.invShiftRows()
	c.invSubBytes()
	c.addRoundKey(0)
	c.storeState(dst)
}
