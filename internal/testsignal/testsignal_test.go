package testsignal

import "testing"

func TestGenerateEachVariant(t *testing.T) {
	for _, v := range Variants() {
		out, err := Generate[float64](v, 48000, 4800)
		if err != nil {
			t.Fatalf("%s: %v", v, err)
		}
		if len(out) != 4800 {
			t.Fatalf("%s: expected 4800 samples, got %d", v, len(out))
		}
	}
}

func TestGenerateRejectsBadInputs(t *testing.T) {
	if _, err := Generate[float64](VariantSilence, 0, 100); err == nil {
		t.Error("expected error for zero sample rate")
	}
	if _, err := Generate[float64](VariantSilence, 48000, 0); err == nil {
		t.Error("expected error for zero sample count")
	}
	if _, err := Generate[float64]("bogus", 48000, 100); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestHashIsDeterministic(t *testing.T) {
	a, _ := Generate[float64](VariantChirp, 48000, 2000)
	b, _ := Generate[float64](VariantChirp, 48000, 2000)
	if HashFloat64LE(a) != HashFloat64LE(b) {
		t.Error("expected identical hashes for identical generation parameters")
	}
}

func TestImpulseIsCentred(t *testing.T) {
	out, err := Generate[float32](VariantImpulse, 48000, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if out[500] != 1 {
		t.Errorf("expected impulse at index 500, got %v", out[500])
	}
}
