package cripta

import "testing"

// FIPS-197, раздел 4.2.1: {57} * {13} = {fe}
func TestXtimeFIPS197(t *testing.T) {
	steps := []byte{0xae, 0x47, 0x8e, 0x07}

	b := byte(0x57)
	for i, want := range steps {
		b = xtime(b)
		if b != want {
			t.Errorf("xtime step %d = 0x%02x, want 0x%02x", i+1, b, want)
		}
	}

	gf := NewGF28Service(AESModulus)
	if got := gf.Multiply(0x57, 0x13); got != 0xfe {
		t.Errorf("Multiply(0x57, 0x13) = 0x%02x, want 0xfe", got)
	}
	if got := gf.Multiply(0x57, 0x83); got != 0xc1 {
		t.Errorf("Multiply(0x57, 0x83) = 0x%02x, want 0xc1", got)
	}
}

func TestConstantMultipliers(t *testing.T) {
	gf := NewGF28Service(AESModulus)

	muls := []struct {
		c  byte
		fn func(byte) byte
	}{
		{2, mul2},
		{3, mul3},
		{9, mul9},
		{11, mul11},
		{13, mul13},
		{14, mul14},
	}

	for _, m := range muls {
		for i := 0; i < 256; i++ {
			if got, want := m.fn(byte(i)), gf.Multiply(m.c, byte(i)); got != want {
				t.Fatalf("mul%d(0x%02x) = 0x%02x, want 0x%02x", m.c, i, got, want)
			}
		}
	}
}

func TestInverse(t *testing.T) {
	gf := NewGF28Service(AESModulus)

	if _, err := gf.Inverse(0); err == nil {
		t.Error("Inverse(0) should fail")
	}

	// FIPS-197, раздел 4.2: {53} * {ca} = {01}
	if got, err := gf.Inverse(0x53); err != nil || got != 0xca {
		t.Errorf("Inverse(0x53) = 0x%02x, %v; want 0xca", got, err)
	}

	for i := 1; i < 256; i++ {
		inv, err := gf.Inverse(byte(i))
		if err != nil {
			t.Fatalf("Inverse(0x%02x) failed: %v", i, err)
		}
		if gf.Multiply(byte(i), inv) != 1 {
			t.Fatalf("0x%02x * 0x%02x != 1", i, inv)
		}
	}
}

func TestInverseReducibleModulus(t *testing.T) {
	// x^8 + 1 = (x + 1)^8, поэтому x + 1 не обратим
	gf := NewGF28Service(0x01)
	if _, err := gf.Inverse(0x03); err == nil {
		t.Error("Inverse() with reducible modulus should fail for 0x03")
	}
}

func TestAffineTransform(t *testing.T) {
	if got := AffineTransform(0x00); got != 0x63 {
		t.Errorf("AffineTransform(0x00) = 0x%02x, want 0x63", got)
	}
	// S(0x53) = affine(0xca) = 0xed
	if got := AffineTransform(0xca); got != 0xed {
		t.Errorf("AffineTransform(0xca) = 0x%02x, want 0xed", got)
	}
}
