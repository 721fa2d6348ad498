package reveal

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&Error{Path: "a", Kind: ErrNotFound}, CodeNotFound},
		{&Error{Path: "/", Kind: ErrNoParentDirectory}, CodeNoParentDirectory},
		{fmt.Errorf("open: %w", &Error{Path: "a", Kind: ErrSpawnFailed, Err: errors.New("boom")}), CodeSpawnFailed},
		{errors.New("something else"), CodeInternal},
	}
	for _, tt := range tests {
		if got := Code(tt.err); got != tt.want {
			t.Errorf("Code(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Path: "/tmp/x", Kind: ErrSpawnFailed, Err: errors.New("permission denied")}
	want := `reveal "/tmp/x": could not start file manager: permission denied`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	err = &Error{Path: "/", Kind: ErrNoParentDirectory}
	want = `reveal "/": path has no parent directory`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
