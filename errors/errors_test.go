package errors

import (
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"instance of the same root error": {
			kind: ErrNotFound,
			err:  ErrNotFound,
			want: true,
		},
		"wrapped root error": {
			kind: ErrNotFound,
			err:  Wrap(ErrNotFound, "gone"),
			want: true,
		},
		"deeply wrapped root error": {
			kind: ErrNotFound,
			err:  Wrap(Wrap(ErrNotFound, "gone"), "very gone"),
			want: true,
		},
		"different root error": {
			kind: ErrNotFound,
			err:  Wrap(ErrState, "gone"),
			want: false,
		},
		"stdlib error": {
			kind: ErrNotFound,
			err:  fmt.Errorf("not found"),
			want: false,
		},
		"nil error": {
			kind: ErrNotFound,
			err:  nil,
			want: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.want {
				t.Fatalf("want %v", tc.want)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "should stay nil"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrapPreservesABCICode(t *testing.T) {
	err := Wrap(ErrUnauthorized, "you shall not pass")
	if got, want := ABCICode(err), ErrUnauthorized.ABCICode(); got != want {
		t.Fatalf("want code %d, got %d", want, got)
	}

	// the code must survive any number of layers, including the
	// stacktrace wrapper attached by the innermost Wrap
	err = Wrapf(err, "layer %d", 2)
	if got, want := ABCICode(err), ErrUnauthorized.ABCICode(); got != want {
		t.Fatalf("want code %d after rewrap, got %d", want, got)
	}
}

func TestABCICodeOfStdlibError(t *testing.T) {
	if got := ABCICode(fmt.Errorf("boom")); got != internalABCICode {
		t.Fatalf("want internal code, got %d", got)
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(ErrNotFound.ABCICode(), "duplicate code")
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("kaboom")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}
