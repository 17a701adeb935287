package errors

import (
	"io"
	"strings"
	"testing"
)

func TestABCInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrNotFound,
			debug:    false,
			wantLog:  "not found",
			wantCode: ErrNotFound.code,
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrNotFound, "foo"), "bar"),
			debug:    false,
			wantLog:  "bar: foo: not found",
			wantCode: ErrNotFound.code,
		},
		"nil is empty message": {
			err:      nil,
			debug:    false,
			wantLog:  "",
			wantCode: 0,
		},
		"nil registered error is not an error": {
			err:      (*Error)(nil),
			debug:    false,
			wantLog:  "",
			wantCode: 0,
		},
		"stdlib is generic message": {
			err:      io.EOF,
			debug:    false,
			wantLog:  "internal error",
			wantCode: 1,
		},
		"stdlib returns error message in debug mode": {
			err:      io.EOF,
			debug:    true,
			wantLog:  "EOF",
			wantCode: 1,
		},
		"wrapped stdlib is only a generic message": {
			err:      Wrap(io.EOF, "cannot read file"),
			debug:    false,
			wantLog:  "internal error",
			wantCode: 1,
		},
		"custom error": {
			err:      customErr{},
			debug:    false,
			wantLog:  "custom",
			wantCode: 999,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestABCIInfoDebugKeepsMessage(t *testing.T) {
	code, log := ABCIInfo(Wrap(io.EOF, "cannot read file"), true)
	if code != 1 {
		t.Fatalf("want internal code, got %d", code)
	}
	if !strings.HasPrefix(log, "cannot read file: EOF") {
		t.Fatalf("unexpected log %q", log)
	}
}

func TestABCIInfoHidesPanics(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("escrow bucket corrupted")
	}()

	code, log := ABCIInfo(err, false)
	if code != internalABCICode || log != internalABCILog {
		t.Fatalf("panic leaked: %d %q", code, log)
	}
	code, log = ABCIInfo(err, true)
	if code != internalABCICode || !strings.Contains(log, "escrow bucket corrupted") {
		t.Fatalf("want panic details in debug mode, got %d %q", code, log)
	}
}

type customErr struct{}

func (customErr) ABCICode() uint32 { return 999 }

func (customErr) Error() string { return "custom" }

func TestFromABCI(t *testing.T) {
	cases := map[string]struct {
		code    uint32
		log     string
		wantNil bool
		want    *Error
		wantMsg string
	}{
		"success": {
			code:    0,
			wantNil: true,
		},
		"registered": {
			code:    ErrNotFound.code,
			log:     "escrow: not found",
			want:    ErrNotFound,
			wantMsg: "escrow: not found",
		},
		"registered without log": {
			code:    ErrState.code,
			want:    ErrState,
			wantMsg: "invalid state",
		},
		"internal": {
			code:    1,
			log:     "internal error",
			want:    ErrHuman,
			wantMsg: "code 1: internal error",
		},
		"unknown": {
			code:    987654,
			log:     "boom",
			want:    ErrHuman,
			wantMsg: "code 987654: boom",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := FromABCI(tc.code, tc.log)
			if tc.wantNil {
				if err != nil {
					t.Fatalf("want nil, got %v", err)
				}
				return
			}
			if !tc.want.Is(err) {
				t.Fatalf("want %q, got %v", tc.want, err)
			}
			if got := err.Error(); got != tc.wantMsg {
				t.Fatalf("want message %q, got %q", tc.wantMsg, got)
			}
		})
	}
}

func TestFromABCIRoundTrip(t *testing.T) {
	orig := Wrap(ErrAmount, "want 10")
	code, log := ABCIInfo(orig, false)
	err := FromABCI(code, log)
	if !ErrAmount.Is(err) {
		t.Fatalf("want invalid amount, got %v", err)
	}
	if abciCode(err) != ErrAmount.code {
		t.Fatalf("code lost: %d", abciCode(err))
	}
	if err.Error() != orig.Error() {
		t.Fatalf("want %q, got %q", orig.Error(), err.Error())
	}
}
