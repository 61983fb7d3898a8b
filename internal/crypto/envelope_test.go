package crypto

import (
	"bytes"
	"testing"
)

func testEnvelopeFields() (key, iv, digest []byte) {
	key = bytes.Repeat([]byte{0xa1}, SymKeySize)
	iv = bytes.Repeat([]byte{0xb2}, IVSize)
	digest = bytes.Repeat([]byte{0xc3}, DigestSize)
	return
}

func TestEnvelope_MarshalParse(t *testing.T) {
	t.Parallel()
	key, iv, digest := testEnvelopeFields()

	env := NewEnvelope(ModeSalted, key, iv, digest)
	buf := env.Marshal()

	if len(buf) != EnvelopeSize {
		t.Fatalf("marshaled size = %d, want %d", len(buf), EnvelopeSize)
	}
	if buf[0] != ModeSalted {
		t.Errorf("mode byte = %d, want %d", buf[0], ModeSalted)
	}
	if buf[1] != SymKeySize || buf[18] != IVSize || buf[35] != DigestSize {
		t.Errorf("length tags = {%d, %d, %d}, want {16, 16, 32}", buf[1], buf[18], buf[35])
	}

	parsed := ParseEnvelope(buf)
	if parsed.Mode != env.Mode {
		t.Errorf("Mode = %d, want %d", parsed.Mode, env.Mode)
	}
	if !bytes.Equal(parsed.Key[:], key) {
		t.Error("parsed key differs from original")
	}
	if !bytes.Equal(parsed.IV[:], iv) {
		t.Error("parsed IV differs from original")
	}
	if !bytes.Equal(parsed.Digest[:], digest) {
		t.Error("parsed digest differs from original")
	}
	if !parsed.ValidTags() {
		t.Error("round-tripped envelope has invalid tags")
	}
}

func TestParseEnvelope_WrongSize(t *testing.T) {
	t.Parallel()
	sizes := []int{0, 1, EnvelopeSize - 1, EnvelopeSize + 1, 256}

	for _, n := range sizes {
		env := ParseEnvelope(bytes.Repeat([]byte{0xff}, n))
		if env.ValidTags() {
			t.Errorf("ParseEnvelope(%d bytes): zero envelope must fail tag validation", n)
		}
		if env.ValidMode(false) || env.ValidMode(true) {
			t.Errorf("ParseEnvelope(%d bytes): zero envelope must fail mode validation", n)
		}
	}
}

func TestEnvelope_ValidTags(t *testing.T) {
	t.Parallel()
	key, iv, digest := testEnvelopeFields()

	tests := []struct {
		name   string
		mutate func(*Envelope)
		want   bool
	}{
		{"all correct", func(e *Envelope) {}, true},
		{"key tag zero", func(e *Envelope) { e.KeyTag = 0 }, false},
		{"key tag off by one", func(e *Envelope) { e.KeyTag = SymKeySize + 1 }, false},
		{"iv tag wrong", func(e *Envelope) { e.IVTag = 32 }, false},
		{"digest tag wrong", func(e *Envelope) { e.DigestTag = 16 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvelope(ModeNoSalt, key, iv, digest)
			tt.mutate(env)
			if got := env.ValidTags(); got != tt.want {
				t.Errorf("ValidTags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnvelope_ValidMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mode   byte
		salted bool
		want   bool
	}{
		{"no salt matches mode 1", ModeNoSalt, false, true},
		{"salt matches mode 2", ModeSalted, true, true},
		{"salt against mode 1", ModeNoSalt, true, false},
		{"no salt against mode 2", ModeSalted, false, false},
		{"mode 0 never valid", 0, false, false},
		{"mode 3 never valid", 3, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &Envelope{Mode: tt.mode}
			if got := env.ValidMode(tt.salted); got != tt.want {
				t.Errorf("ValidMode(%v) = %v, want %v", tt.salted, got, tt.want)
			}
		})
	}
}

func TestEnvelope_Wipe(t *testing.T) {
	t.Parallel()
	key, iv, digest := testEnvelopeFields()
	env := NewEnvelope(ModeSalted, key, iv, digest)

	env.Wipe()

	if env.Mode != 0 || env.KeyTag != 0 || env.IVTag != 0 || env.DigestTag != 0 {
		t.Error("Wipe left non-zero scalar fields")
	}
	zero := make([]byte, DigestSize)
	if !bytes.Equal(env.Key[:], zero[:SymKeySize]) {
		t.Error("Wipe left key bytes")
	}
	if !bytes.Equal(env.IV[:], zero[:IVSize]) {
		t.Error("Wipe left IV bytes")
	}
	if !bytes.Equal(env.Digest[:], zero) {
		t.Error("Wipe left digest bytes")
	}
}
