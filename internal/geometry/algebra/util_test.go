package algebra

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// onLine reports whether z satisfies the implicit equation of l.
func onLine(l Line, z Complex) float64 {
	return l.Coef.Conj().Mul(z).Re*2 + l.Free
}
