package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := New(CodeFileNotFound, "file not found").WithContext("path", "/x/y")
	msg := err.Error()
	if !strings.Contains(msg, "E101") || !strings.Contains(msg, "/x/y") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := Wrap(cause, CodeFileRead, "read failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("Error() = %q, cause missing", err.Error())
	}
	if Wrap(nil, CodeFileRead, "noop") != nil {
		t.Error("Wrap(nil) != nil")
	}
}

func TestIsCode(t *testing.T) {
	err := Wrapf(stderrors.New("boom"), CodeConfigParse, "load %s", "config")
	if !IsCode(err, CodeConfigParse) {
		t.Error("IsCode = false")
	}
	if IsCode(err, CodeFileNotFound) {
		t.Error("IsCode matched wrong code")
	}
	if GetCode(stderrors.New("plain")) != CodeUnknown {
		t.Error("GetCode on plain error != CodeUnknown")
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	a := New(CodeWatchFailed, "one")
	b := New(CodeWatchFailed, "two")
	if !stderrors.Is(a, b) {
		t.Error("errors with equal codes should match")
	}
}
