package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	kd := NewKeyDeriver()

	s1, err := kd.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := kd.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize || len(s2) != SaltSize {
		t.Fatalf("salt lengths = %d, %d, want %d", len(s1), len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateSalt_NoRepeatsAcrossManyCalls(t *testing.T) {
	kd := NewKeyDeriver()
	seen := make(map[string]struct{}, 10_000)

	for i := 0; i < 10_000; i++ {
		s, err := kd.GenerateSalt()
		if err != nil {
			t.Fatalf("GenerateSalt error at %d: %v", i, err)
		}
		if _, dup := seen[string(s)]; dup {
			t.Fatalf("salt repeated at iteration %d", i)
		}
		seen[string(s)] = struct{}{}
	}
}

func TestGenerateSalt_ReaderFailure(t *testing.T) {
	kd := &keyDeriver{random: bytes.NewReader(nil), iterations: PBKDF2Iterations, keyLen: KeySize}

	if _, err := kd.GenerateSalt(); err == nil {
		t.Fatalf("expected error from exhausted reader")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	kd := NewKeyDeriver()
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, err := kd.DeriveKey("correct horse battery staple", salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := kd.DeriveKey("correct horse battery staple", salt)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	kd := NewKeyDeriver()

	k1, _ := kd.DeriveKey("same password", bytes.Repeat([]byte{0x01}, SaltSize))
	k2, _ := kd.DeriveKey("same password", bytes.Repeat([]byte{0x02}, SaltSize))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_DifferentPasswordProducesDifferentKey(t *testing.T) {
	kd := NewKeyDeriver()
	salt := bytes.Repeat([]byte{0x07}, SaltSize)

	k1, _ := kd.DeriveKey("p@ss", salt)
	k2, _ := kd.DeriveKey("wrong", salt)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different passwords")
	}
}

func TestDeriveKey_EmptyPasswordAccepted(t *testing.T) {
	kd := NewKeyDeriver()

	key, err := kd.DeriveKey("", bytes.Repeat([]byte{0x10}, SaltSize))
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	if len(key) != KeySize {
		t.Fatalf("key length = %d, want %d", len(key), KeySize)
	}
}

func TestDeriveKey_InvalidSaltLength(t *testing.T) {
	kd := NewKeyDeriver()

	for _, n := range []int{0, 8, 15, 17, 32} {
		_, err := kd.DeriveKey("pw", make([]byte, n))
		if !errors.Is(err, ErrInvalidSaltLength) {
			t.Fatalf("salt of %d bytes: err = %v, want ErrInvalidSaltLength", n, err)
		}
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Wipe(b)

	if !bytes.Equal(b, make([]byte, 4)) {
		t.Fatalf("Wipe left %v", b)
	}
}
