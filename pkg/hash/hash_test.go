package hash

import "testing"

func TestSHA256Hex(t *testing.T) {
	// Known vector: SHA256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := SHA256Hex("abc"); got != want {
		t.Errorf("SHA256Hex(abc) = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Deterministic(t *testing.T) {
	a := SHA256Hex("snapshot:42")
	b := SHA256Hex("snapshot:42")
	if a != b {
		t.Error("same input produced different hashes")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64", len(a))
	}
}

func TestShortHex(t *testing.T) {
	full := SHA256Hex("creatorlens")
	if got := ShortHex("creatorlens", 16); got != full[:16] {
		t.Errorf("ShortHex = %s, want %s", got, full[:16])
	}
	if got := ShortHex("creatorlens", 100); got != full {
		t.Errorf("over-long prefix should return full hash, got %s", got)
	}
}

func TestShortHex_DistinctInputs(t *testing.T) {
	if ShortHex("a", 16) == ShortHex("b", 16) {
		t.Error("distinct inputs collided on 16-char prefix")
	}
}
