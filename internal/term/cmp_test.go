package term

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGoCmpUsesAlphaEquivalence(t *testing.T) {
	a := Abs(0, Abs(1, App(Var(0), Var(1))))
	b := Abs(5, Abs(6, App(Var(5), Var(6))))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("alpha-equivalent terms should compare equal via Term.Equal (-a +b):\n%s", diff)
	}

	c := Abs(0, Abs(1, App(Var(1), Var(0))))
	if cmp.Equal(a, c) {
		t.Errorf("terms with swapped application order must not compare equal")
	}
}
