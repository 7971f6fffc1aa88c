package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromUnwrapsWrappedAPIError(t *testing.T) {
	inner := MalformedBody(errors.New("chapterId is required"))
	wrapped := fmt.Errorf("enter theory: %w", inner)

	got := From(wrapped)
	if got != inner {
		t.Fatalf("From returned %+v, want the wrapped api error", got)
	}
	if got.Status != http.StatusBadRequest || got.Code != CodeMalformedBody {
		t.Fatalf("unexpected status/code: %d %q", got.Status, got.Code)
	}
}

func TestFromDefaultsToInternal(t *testing.T) {
	got := From(errors.New("boom"))
	if got.Status != http.StatusInternalServerError || got.Code != CodeInternal {
		t.Fatalf("unexpected status/code: %d %q", got.Status, got.Code)
	}
	if From(nil) != nil {
		t.Fatal("From(nil) should be nil")
	}
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"with err", MalformedBody(errors.New("bad json")), "bad json"},
		{"code only", Internal(), CodeInternal},
		{"status only", NotFound(), "api error (404)"},
		{"too large", BodyTooLarge(16), "request body exceeds 16 bytes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("got=%q want=%q", got, tc.want)
			}
		})
	}
}
