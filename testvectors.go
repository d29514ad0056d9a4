package aes

import (
	"encoding/hex"
	"fmt"
)

// KnownAnswerTest is a single published test vector: encrypting
// Plaintext under Key (and IV, for the chained modes) must yield
// Ciphertext byte for byte. All byte fields are hex encoded.
//
// Used internally for testing but exported for external validation
// tools that want to run the suite against another implementation.
type KnownAnswerTest struct {
	Name       string
	Mode       string // "ECB", "CBC" or "CTR"
	Size       KeySize
	Key        string
	IV         string // empty for ECB
	Plaintext  string
	Ciphertext string
}

// DecodeFields returns the decoded key, IV, plaintext and ciphertext.
// The IV is nil when the vector has none.
func (v *KnownAnswerTest) DecodeFields() (key, iv, pt, ct []byte, err error) {
	if key, err = hex.DecodeString(v.Key); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("vector %s: bad key: %w", v.Name, err)
	}
	if v.IV != "" {
		if iv, err = hex.DecodeString(v.IV); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("vector %s: bad IV: %w", v.Name, err)
		}
	}
	if pt, err = hex.DecodeString(v.Plaintext); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("vector %s: bad plaintext: %w", v.Name, err)
	}
	if ct, err = hex.DecodeString(v.Ciphertext); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("vector %s: bad ciphertext: %w", v.Name, err)
	}
	return key, iv, pt, ct, nil
}

// Common SP 800-38A Appendix F material: the same four plaintext blocks
// are used for every mode and key size.
const (
	nistPlaintext = "6bc1bee22e409f96e93d7e117393172a" +
		"ae2d8a571e03ac9c9eb76fac45af8e51" +
		"30c81c46a35ce411e5fbc1191a0a52ef" +
		"f69f2445df4f9b17ad2b417be66c3710"

	nistKey128 = "2b7e151628aed2a6abf7158809cf4f3c"
	nistKey192 = "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b"
	nistKey256 = "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4"

	nistCBCIV      = "000102030405060708090a0b0c0d0e0f"
	nistCTRCounter = "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"
)

// KnownAnswerSuite returns the built-in vector suite: the NIST SP
// 800-38A Appendix F examples for ECB/CBC/CTR at all three key sizes,
// plus the FIPS-197 Appendix C single-block cipher examples.
func KnownAnswerSuite() []KnownAnswerTest {
	return []KnownAnswerTest{
		{
			Name: "FIPS-197 C.1", Mode: "ECB", Size: AES128,
			Key:        "000102030405060708090a0b0c0d0e0f",
			Plaintext:  "00112233445566778899aabbccddeeff",
			Ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			Name: "FIPS-197 C.2", Mode: "ECB", Size: AES192,
			Key:        "000102030405060708090a0b0c0d0e0f1011121314151617",
			Plaintext:  "00112233445566778899aabbccddeeff",
			Ciphertext: "dda97ca4864cdfe06eaf70a0ec0d7191",
		},
		{
			Name: "FIPS-197 C.3", Mode: "ECB", Size: AES256,
			Key:        "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			Plaintext:  "00112233445566778899aabbccddeeff",
			Ciphertext: "8ea2b7ca516745bfeafc49904b496089",
		},
		{
			Name: "SP 800-38A F.1.1 ECB-AES128", Mode: "ECB", Size: AES128,
			Key:       nistKey128,
			Plaintext: nistPlaintext,
			Ciphertext: "3ad77bb40d7a3660a89ecaf32466ef97" +
				"f5d3d58503b9699de785895a96fdbaaf" +
				"43b1cd7f598ece23881b00e3ed030688" +
				"7b0c785e27e8ad3f8223207104725dd4",
		},
		{
			Name: "SP 800-38A F.1.3 ECB-AES192", Mode: "ECB", Size: AES192,
			Key:       nistKey192,
			Plaintext: nistPlaintext,
			Ciphertext: "bd334f1d6e45f25ff712a214571fa5cc" +
				"974104846d0ad3ad7734ecb3ecee4eef" +
				"ef7afd2270e2e60adce0ba2face6444e" +
				"9a4b41ba738d6c72fb16691603c18e0e",
		},
		{
			Name: "SP 800-38A F.1.5 ECB-AES256", Mode: "ECB", Size: AES256,
			Key:       nistKey256,
			Plaintext: nistPlaintext,
			Ciphertext: "f3eed1bdb5d2a03c064b5a7e3db181f8" +
				"591ccb10d410ed26dc5ba74a31362870" +
				"b6ed21b99ca6f4f9f153e7b1beafed1d" +
				"23304b7a39f9f3ff067d8d8f9e24ecc7",
		},
		{
			Name: "SP 800-38A F.2.1 CBC-AES128", Mode: "CBC", Size: AES128,
			Key: nistKey128, IV: nistCBCIV,
			Plaintext: nistPlaintext,
			Ciphertext: "7649abac8119b246cee98e9b12e9197d" +
				"5086cb9b507219ee95db113a917678b2" +
				"73bed6b8e3c1743b7116e69e22229516" +
				"3ff1caa1681fac09120eca307586e1a7",
		},
		{
			Name: "SP 800-38A F.2.3 CBC-AES192", Mode: "CBC", Size: AES192,
			Key: nistKey192, IV: nistCBCIV,
			Plaintext: nistPlaintext,
			Ciphertext: "4f021db243bc633d7178183a9fa071e8" +
				"b4d9ada9ad7dedf4e5e738763f69145a" +
				"571b242012fb7ae07fa9baac3df102e0" +
				"08b0e27988598881d920a9e64f5615cd",
		},
		{
			Name: "SP 800-38A F.2.5 CBC-AES256", Mode: "CBC", Size: AES256,
			Key: nistKey256, IV: nistCBCIV,
			Plaintext: nistPlaintext,
			Ciphertext: "f58c4c04d6e5f1ba779eabfb5f7bfbd6" +
				"9cfc4e967edb808d679f777bc6702c7d" +
				"39f23369a9d9bacfa530e26304231461" +
				"b2eb05e2c39be9fcda6c19078c6a9d1b",
		},
		{
			Name: "SP 800-38A F.5.1 CTR-AES128", Mode: "CTR", Size: AES128,
			Key: nistKey128, IV: nistCTRCounter,
			Plaintext: nistPlaintext,
			Ciphertext: "874d6191b620e3261bef6864990db6ce" +
				"9806f66b7970fdff8617187bb9fffdff" +
				"5ae4df3edbd5d35e5b4f09020db03eab" +
				"1e031dda2fbe03d1792170a0f3009cee",
		},
		{
			Name: "SP 800-38A F.5.3 CTR-AES192", Mode: "CTR", Size: AES192,
			Key: nistKey192, IV: nistCTRCounter,
			Plaintext: nistPlaintext,
			Ciphertext: "1abc932417521ca24f2b0459fe7e6e0b" +
				"090339ec0aa6faefd5ccc2c6f4ce8e94" +
				"1e36b26bd1ebc670d1bd1d665620abf7" +
				"4f78a7f6d29809585a97daec58c6b050",
		},
		{
			Name: "SP 800-38A F.5.5 CTR-AES256", Mode: "CTR", Size: AES256,
			Key: nistKey256, IV: nistCTRCounter,
			Plaintext: nistPlaintext,
			Ciphertext: "601ec313775789a5b7a7f504bbf3d228" +
				"f443e3ca4d62b59aca84e990cacaf5c5" +
				"2b0930daa23de94ce87017ba2d84988d" +
				"dfc9c58db67aada613c2dd08457941a6",
		},
	}
}
