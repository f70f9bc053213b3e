package pixelgeom

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

// diffApprox compares geometry that went through intersection math, where
// exact float equality is too strict.
func diffApprox(t *testing.T, want, got any) {
	t.Helper()
	diff(t, want, got, cmpopts.EquateApprox(1e-9, 1e-9))
}
