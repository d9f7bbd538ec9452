package auth

import "testing"

func TestPinHasher_Verify(t *testing.T) {
	h := NewPinHasher()

	// sha256("1234"), the digest format stored for seeded operators.
	const hash1234 = "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4"

	tests := []struct {
		name   string
		pin    string
		stored string
		want   bool
	}{
		{name: "correct pin", pin: "1234", stored: hash1234, want: true},
		{name: "uppercase stored digest", pin: "1234", stored: "03AC674216F3E15C761EE1A5E255F067953623C8B388B4459E13F978D7C846F4", want: true},
		{name: "wrong pin", pin: "0000", stored: hash1234, want: false},
		{name: "empty pin", pin: "", stored: hash1234, want: false},
		{name: "empty stored hash", pin: "1234", stored: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Verify(tt.pin, tt.stored); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.pin, got, tt.want)
			}
		})
	}
}

func TestPinHasher_HashRoundTrip(t *testing.T) {
	h := NewPinHasher()
	if !h.Verify("secret-pin", h.Hash("secret-pin")) {
		t.Error("hash does not verify against itself")
	}
}
