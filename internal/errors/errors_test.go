package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := NewRenameError("/tmp/a.png", fs.ErrPermission)

	msg := err.Error()
	if !strings.HasPrefix(msg, "RENAME_FAILED") {
		t.Errorf("message should start with the code, got %q", msg)
	}
	if !strings.Contains(msg, "/tmp/a.png") {
		t.Errorf("message should contain the path, got %q", msg)
	}
	if !strings.Contains(msg, fs.ErrPermission.Error()) {
		t.Errorf("message should contain the cause, got %q", msg)
	}
}

func TestError_Unwrap(t *testing.T) {
	err := NewExtractionError("a.png", fs.ErrNotExist)
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the cause through Unwrap")
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"direct match", NewDirectoryError("/x", nil), CodeDirectory, true},
		{"wrapped match", fmt.Errorf("run: %w", NewCollisionExhaustedError("_a.png", 3)), CodeCollisionExhausted, true},
		{"different code", NewRenameError("a", nil), CodeDirectory, false},
		{"plain error", stderrors.New("boom"), CodeRenameFailed, false},
		{"nil", nil, CodeRenameFailed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewDirectoryError_NoCause(t *testing.T) {
	err := NewDirectoryError("/etc/passwd", nil)
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
