package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func TestAEADCodec_RoundTrip(t *testing.T) {
	codec := NewAEADCodec()
	key := testKey(0x42)

	for _, plaintext := range [][]byte{
		{},
		[]byte("x"),
		[]byte(`{"hp":40,"kills":3}`),
		bytes.Repeat([]byte{0xFF}, 4096),
	} {
		sealed, err := codec.Seal(plaintext, key)
		if err != nil {
			t.Fatalf("Seal error: %v", err)
		}
		if len(sealed.Nonce) != NonceSize {
			t.Fatalf("nonce length = %d, want %d", len(sealed.Nonce), NonceSize)
		}
		if len(sealed.Tag) != TagSize {
			t.Fatalf("tag length = %d, want %d", len(sealed.Tag), TagSize)
		}
		if len(sealed.Ciphertext) != len(plaintext) {
			t.Fatalf("ciphertext length = %d, want %d", len(sealed.Ciphertext), len(plaintext))
		}

		got, err := codec.Open(sealed, key)
		if err != nil {
			t.Fatalf("Open error: %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
		}
	}
}

func TestAEADCodec_WrongKeyFailsClosed(t *testing.T) {
	codec := NewAEADCodec()

	sealed, err := codec.Seal([]byte("secret game"), testKey(0x01))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	got, err := codec.Open(sealed, testKey(0x02))
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("err = %v, want ErrAuthenticationFailed", err)
	}
	if got != nil {
		t.Fatalf("expected no plaintext, got %q", got)
	}
}

func TestAEADCodec_NoNonceRepeats(t *testing.T) {
	codec := NewAEADCodec()
	key := testKey(0x33)
	seen := make(map[string]struct{}, 10_000)

	for i := 0; i < 10_000; i++ {
		sealed, err := codec.Seal([]byte("same plaintext"), key)
		if err != nil {
			t.Fatalf("Seal error at %d: %v", i, err)
		}
		if _, dup := seen[string(sealed.Nonce)]; dup {
			t.Fatalf("nonce repeated at iteration %d", i)
		}
		seen[string(sealed.Nonce)] = struct{}{}
	}
}

func TestAEADCodec_FlippedByteRejected(t *testing.T) {
	codec := NewAEADCodec()
	key := testKey(0x55)

	sealed, err := codec.Seal([]byte(`{"hp":40,"kills":3}`), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	for i := range sealed.Ciphertext {
		tampered := Sealed{Nonce: sealed.Nonce, Tag: sealed.Tag, Ciphertext: bytes.Clone(sealed.Ciphertext)}
		tampered.Ciphertext[i] ^= 0x01
		if _, err := codec.Open(tampered, key); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("ciphertext byte %d flipped: err = %v", i, err)
		}
	}

	for i := range sealed.Tag {
		tampered := Sealed{Nonce: sealed.Nonce, Tag: bytes.Clone(sealed.Tag), Ciphertext: sealed.Ciphertext}
		tampered.Tag[i] ^= 0x80
		if _, err := codec.Open(tampered, key); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("tag byte %d flipped: err = %v", i, err)
		}
	}
}

func TestAEADCodec_MalformedInput(t *testing.T) {
	codec := NewAEADCodec()
	key := testKey(0x66)

	sealed, err := codec.Seal([]byte("payload"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	cases := map[string]Sealed{
		"short nonce": {Nonce: sealed.Nonce[:8], Tag: sealed.Tag, Ciphertext: sealed.Ciphertext},
		"no tag":      {Nonce: sealed.Nonce, Ciphertext: sealed.Ciphertext},
		"long tag":    {Nonce: sealed.Nonce, Tag: append(bytes.Clone(sealed.Tag), 0), Ciphertext: sealed.Ciphertext},
	}
	for name, s := range cases {
		if _, err := codec.Open(s, key); !errors.Is(err, ErrDecode) {
			t.Fatalf("%s: err = %v, want ErrDecode", name, err)
		}
	}
}

func TestAEADCodec_InvalidKeyLength(t *testing.T) {
	codec := NewAEADCodec()

	if _, err := codec.Seal([]byte("x"), make([]byte, 16)); !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("Seal err = %v, want ErrInvalidKeyLength", err)
	}
}

func TestAEADCodec_NonceReaderFailure(t *testing.T) {
	codec := &aeadCodec{random: bytes.NewReader(nil)}

	if _, err := codec.Seal([]byte("x"), testKey(1)); err == nil {
		t.Fatalf("expected error from exhausted reader")
	}
}

// TestAEADCodec_WithDerivedKey covers the full chain a save goes through:
// derive from password, seal, derive again from the same salt, open.
func TestAEADCodec_WithDerivedKey(t *testing.T) {
	kd := NewKeyDeriver()
	codec := NewAEADCodec()

	salt, err := kd.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	key, _ := kd.DeriveKey("p@ss", salt)

	sealed, err := codec.Seal([]byte(`{"hp":40,"kills":3}`), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	again, _ := kd.DeriveKey("p@ss", salt)
	got, err := codec.Open(sealed, again)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if string(got) != `{"hp":40,"kills":3}` {
		t.Fatalf("got %q", got)
	}

	wrong, _ := kd.DeriveKey("wrong", salt)
	if _, err := codec.Open(sealed, wrong); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("wrong password: err = %v", err)
	}
}
