package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestAtLine(t *testing.T) {
	err := AtLine(Binding("undefined name %s", "A"), 3)
	if got := err.Error(); got != "line 3: undefined name A" {
		t.Errorf("got %q", got)
	}
	if !IsCode(err, CodeBinding) || LineOf(err) != 3 {
		t.Errorf("code %s line %d", GetCode(err), LineOf(err))
	}

	// The first line attached wins.
	if n := LineOf(AtLine(err, 7)); n != 3 {
		t.Errorf("renumbered to %d", n)
	}
	if AtLine(nil, 1) != nil {
		t.Error("nil error numbered")
	}
}

func TestForeignErrors(t *testing.T) {
	err := AtLine(errors.New("boom"), 2)
	if GetCode(err) != CodeUnknown || LineOf(err) != 2 {
		t.Errorf("code %s line %d", GetCode(err), LineOf(err))
	}
	if err.Error() != "line 2: boom" {
		t.Errorf("got %q", err)
	}
	if GetCode(errors.New("plain")) != CodeUnknown || LineOf(errors.New("plain")) != 0 {
		t.Error("plain error classified")
	}
}

func TestWrapped(t *testing.T) {
	err := fmt.Errorf("circumcenter: %w", Algebra("non-finite result"))
	if !IsCode(err, CodeAlgebra) {
		t.Errorf("code %s", GetCode(err))
	}
	inner := errors.New("disk")
	e := &Error{Code: CodeParse, Message: "read", Err: inner}
	if !errors.Is(e, inner) || e.Error() != "read: disk" {
		t.Errorf("got %q", e)
	}
}
