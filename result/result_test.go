package result_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	. "github.com/npillmayer/jss/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultGetAndDefault(t *testing.T) {
	n, err := strconv.Atoi("12")
	x := Of(n, err)
	if n, err = x.Get(); err != nil || n != 12 {
		t.Errorf("expected Ok(12), have %d, %v", n, err)
	}
	_, err = strconv.Atoi("twelve")
	y := Of(0, err)
	if y.IsOk() {
		t.Error("expected Atoi(twelve) to be an error result")
	}
	if y.WithDefault(-1) != -1 {
		t.Errorf("expected default for error result")
	}
	if x.Unwrap() != 12 {
		t.Errorf("expected unwrap to yield 12")
	}
}

func TestResultUnwrapPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Unwrap of Err to panic")
		}
	}()
	Err[string](errors.New("boom")).Unwrap()
}

func TestResultChaining(t *testing.T) {
	double := func(n int) int { return 2 * n }
	half := func(n int) Result[int] {
		if n%2 != 0 {
			return Err[int](fmt.Errorf("%d is odd", n))
		}
		return Ok(n / 2)
	}
	if v := Map(double, Ok(4)).Unwrap(); v != 8 {
		t.Errorf("expected Map(double, 4) = 8, is %d", v)
	}
	if AndThen(half, Ok(3)).IsOk() {
		t.Error("expected half(3) to fail")
	}
	if v := AndThen(half, Map(double, Ok(3))).Unwrap(); v != 3 {
		t.Errorf("expected half(double(3)) = 3, is %d", v)
	}
	wrapped := MapError(func(err error) error { return fmt.Errorf("wrapped: %w", err) },
		AndThen(half, Ok(5)))
	if _, err := wrapped.Get(); err == nil || err.Error() != "wrapped: 5 is odd" {
		t.Errorf("expected wrapped error, have %v", err)
	}
}
