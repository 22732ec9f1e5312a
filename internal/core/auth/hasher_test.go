package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "Passw0rd!" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify("Passw0rd!", digest) {
		t.Fatalf("Verify rejected matching plaintext")
	}
}

func TestHasher_VerifyMismatch(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("Verify accepted wrong plaintext")
	}
}

func TestHasher_VerifyMalformedDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	// Corrupted digests must read as a mismatch, never an error.
	if h.Verify("Passw0rd!", "not-a-bcrypt-digest") {
		t.Fatalf("Verify accepted malformed digest")
	}
	if h.Verify("Passw0rd!", "") {
		t.Fatalf("Verify accepted empty digest")
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	h := NewHasher(0)
	if h.cost != DefaultHashCost {
		t.Fatalf("expected cost %d for out-of-range input, got %d", DefaultHashCost, h.cost)
	}

	h = NewHasher(100)
	if h.cost != DefaultHashCost {
		t.Fatalf("expected cost %d for out-of-range input, got %d", DefaultHashCost, h.cost)
	}
}

func TestHasher_DigestCarriesCost(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !strings.HasPrefix(digest, "$2a$04$") {
		t.Fatalf("digest does not carry configured cost: %s", digest)
	}
}
