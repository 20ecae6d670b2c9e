package config_test

import (
	"os"
	"testing"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCryptoShortKey(t *testing.T) {
	os.Setenv("CRYPTO_KEY", "too-short")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("InitCrypto should panic on a key shorter than 32 bytes")
		}
	}()

	config.InitCrypto()
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("RoundTrip", func(t *testing.T) {
		plaintext := "482913"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("decrypted text %q does not match original %q", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("encryption must be randomized; two ciphertexts should differ")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("decrypted empty text is incorrect: %q", decrypted)
		}
	})

	t.Run("TamperedCiphertext", func(t *testing.T) {
		if _, err := config.Decrypt("bm90LXZhbGlkLWNpcGhlcnRleHQtYXQtYWxs"); err == nil {
			t.Error("Decrypt should fail on tampered input")
		}
	})
}
