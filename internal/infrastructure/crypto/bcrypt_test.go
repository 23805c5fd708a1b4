package crypto

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // minimum cost keeps the test fast

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify("s3cret", digest) {
		t.Fatalf("verify rejected matching plaintext")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("verify accepted wrong plaintext")
	}
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := NewBcryptHasher(4)

	d1, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	d2, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two hashes of the same plaintext are identical")
	}
	if !h.Verify("same", d1) || !h.Verify("same", d2) {
		t.Fatalf("verify rejected one of the salted digests")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(4)

	for _, digest := range []string{"", "not-a-digest", "$2a$broken"} {
		if h.Verify("anything", digest) {
			t.Fatalf("verify accepted malformed digest %q", digest)
		}
	}
}
