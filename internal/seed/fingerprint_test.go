package seed

import "testing"

func TestFingerprint(t *testing.T) {
	a := []byte("items:\n  - name: Wood\n")
	b := []byte("items:\n  - name: Wood\n")
	c := []byte("items:\n  - name: Wood \n")

	if Fingerprint(a) != Fingerprint(b) {
		t.Fatalf("identical bytes must fingerprint identically")
	}
	if Fingerprint(a) == Fingerprint(c) {
		t.Fatalf("a one-byte change must change the fingerprint")
	}
	if got := len(Fingerprint(a)); got != 64 {
		t.Fatalf("expected 64 hex chars, got %d", got)
	}
	// sha256 of the empty input
	if got := Fingerprint(nil); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Fatalf("unexpected empty fingerprint %s", got)
	}
}

func TestShort(t *testing.T) {
	if got := Short("e3b0c44298fc"); got != "e3b0c44" {
		t.Fatalf("Short: got %q", got)
	}
	if got := Short("abc"); got != "abc" {
		t.Fatalf("Short (short input): got %q", got)
	}
}
