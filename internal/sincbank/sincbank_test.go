package sincbank

import (
	"math"
	"testing"

	"github.com/gosinc/resample/internal/window"
)

func TestShapeInvariants(t *testing.T) {
	const l, k = 64, 16
	bank := Build[float64](l, k, 0.95, window.BlackmanHarris2)
	if bank.Len() != l {
		t.Fatalf("Len() = %d, want %d", bank.Len(), l)
	}
	if bank.NbrSincs() != k {
		t.Fatalf("NbrSincs() = %d, want %d", bank.NbrSincs(), k)
	}
	for sub := 0; sub < k; sub++ {
		table := bank.Table(sub)
		if len(table) != l {
			t.Fatalf("table %d length = %d, want %d", sub, len(table), l)
		}
	}
}

func TestCentreTapIsPeak(t *testing.T) {
	// At zero fractional offset, the prototype is centred on the table and
	// the coefficient nearest the centre should dominate its neighbours.
	bank := Build[float64](64, 16, 0.95, window.BlackmanHarris2)
	table := bank.Table(0)
	centre := len(table) / 2
	for i := range table {
		if i == centre {
			continue
		}
		if math.Abs(table[i]) > math.Abs(table[centre])*1.5 {
			t.Fatalf("tap %d (%v) unexpectedly dominates centre tap %d (%v)", i, table[i], centre, table[centre])
		}
	}
}

func TestPanicsOnBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-multiple-of-8 length")
		}
	}()
	Build[float64](63, 16, 0.95, window.BlackmanHarris2)
}

func TestPanicsOnBadCutoff(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range cutoff")
		}
	}()
	Build[float64](64, 16, 1.5, window.BlackmanHarris2)
}

func TestFloat32Instantiation(t *testing.T) {
	bank := Build[float32](32, 8, 0.9, window.Hann)
	if bank.Len() != 32 || bank.NbrSincs() != 8 {
		t.Fatalf("unexpected shape: len=%d, k=%d", bank.Len(), bank.NbrSincs())
	}
}
