package aes

import (
	"bytes"
	stdaes "crypto/aes"
	"crypto/cipher"
	"testing"
)

// Cross-validation against the Go standard library, which is an
// independent AES implementation. Random keys, IVs and messages; any
// divergence in the key schedule, round pipeline or mode chaining shows
// up here even for inputs no published vector covers.

func TestReferenceECB(t *testing.T) {
	for _, size := range []KeySize{AES128, AES192, AES256} {
		t.Run(size.String(), func(t *testing.T) {
			for trial := 0; trial < 20; trial++ {
				key := randBytes(t, size.Length())

				ref, err := stdaes.NewCipher(key)
				if err != nil {
					t.Fatalf("crypto/aes NewCipher() error = %v", err)
				}
				c, err := New(size, key)
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}

				pt := randBytes(t, BlockSize)
				want := make([]byte, BlockSize)
				got := make([]byte, BlockSize)

				ref.Encrypt(want, pt)
				if err := c.EncryptECB(got, pt); err != nil {
					t.Fatalf("EncryptECB() error = %v", err)
				}
				if !bytes.Equal(got, want) {
					t.Fatalf("encrypt diverges from crypto/aes:\nkey:  %x\npt:   %x\ngot:  %x\nwant: %x",
						key, pt, got, want)
				}

				ref.Decrypt(want, pt)
				if err := c.DecryptECB(got, pt); err != nil {
					t.Fatalf("DecryptECB() error = %v", err)
				}
				if !bytes.Equal(got, want) {
					t.Fatalf("decrypt diverges from crypto/aes:\nkey:  %x\nct:   %x\ngot:  %x\nwant: %x",
						key, pt, got, want)
				}
			}
		})
	}
}

func TestReferenceCBC(t *testing.T) {
	for _, size := range []KeySize{AES128, AES192, AES256} {
		t.Run(size.String(), func(t *testing.T) {
			for trial := 0; trial < 10; trial++ {
				key := randBytes(t, size.Length())
				iv := randBytes(t, BlockSize)
				pt := randBytes(t, (1+trial)*BlockSize)

				ref, err := stdaes.NewCipher(key)
				if err != nil {
					t.Fatalf("crypto/aes NewCipher() error = %v", err)
				}

				want := make([]byte, len(pt))
				cipher.NewCBCEncrypter(ref, iv).CryptBlocks(want, pt)

				c, err := NewWithIV(size, key, iv)
				if err != nil {
					t.Fatalf("NewWithIV() error = %v", err)
				}
				got := make([]byte, len(pt))
				if err := c.EncryptCBC(got, pt); err != nil {
					t.Fatalf("EncryptCBC() error = %v", err)
				}
				if !bytes.Equal(got, want) {
					t.Fatalf("CBC encrypt diverges from crypto/cipher at %d bytes", len(pt))
				}

				back := make([]byte, len(pt))
				d, _ := NewWithIV(size, key, iv)
				if err := d.DecryptCBC(back, want); err != nil {
					t.Fatalf("DecryptCBC() error = %v", err)
				}
				if !bytes.Equal(back, pt) {
					t.Fatalf("CBC decrypt diverges from crypto/cipher at %d bytes", len(pt))
				}
			}
		})
	}
}

func TestReferenceCTR(t *testing.T) {
	for _, size := range []KeySize{AES128, AES192, AES256} {
		t.Run(size.String(), func(t *testing.T) {
			for trial := 0; trial < 10; trial++ {
				key := randBytes(t, size.Length())
				iv := randBytes(t, BlockSize)
				pt := randBytes(t, (1+trial)*BlockSize)

				ref, err := stdaes.NewCipher(key)
				if err != nil {
					t.Fatalf("crypto/aes NewCipher() error = %v", err)
				}

				want := make([]byte, len(pt))
				cipher.NewCTR(ref, iv).XORKeyStream(want, pt)

				c, err := NewWithIV(size, key, iv)
				if err != nil {
					t.Fatalf("NewWithIV() error = %v", err)
				}
				got := make([]byte, len(pt))
				if err := c.EncryptCTR(got, pt); err != nil {
					t.Fatalf("EncryptCTR() error = %v", err)
				}
				if !bytes.Equal(got, want) {
					t.Fatalf("CTR diverges from crypto/cipher at %d bytes", len(pt))
				}
			}
		})
	}
}

// A counter starting near the 128-bit boundary must match the stdlib
// across the wrap.
func TestReferenceCTRWrap(t *testing.T) {
	key := randBytes(t, 32)
	iv := bytes.Repeat([]byte{0xff}, BlockSize)
	pt := randBytes(t, 4*BlockSize)

	ref, err := stdaes.NewCipher(key)
	if err != nil {
		t.Fatalf("crypto/aes NewCipher() error = %v", err)
	}
	want := make([]byte, len(pt))
	cipher.NewCTR(ref, iv).XORKeyStream(want, pt)

	c, err := NewWithIV(AES256, key, iv)
	if err != nil {
		t.Fatalf("NewWithIV() error = %v", err)
	}
	got := make([]byte, len(pt))
	if err := c.EncryptCTR(got, pt); err != nil {
		t.Fatalf("EncryptCTR() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("CTR wrap diverges from crypto/cipher")
	}
}
