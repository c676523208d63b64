package sharedpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSegments(t *testing.T) {
	t.Parallel()

	if got := Segments(""); got != nil {
		t.Fatalf("Segments(\"\") = %#v, want nil", got)
	}
	got := Segments(" /AI101//edit/ extra / ")
	if diff := cmp.Diff([]string{"AI101", "edit", "extra"}, got); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestEditKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		suffix string
		want   string
		wantOK bool
	}{
		{suffix: "AI101/edit", want: "AI101", wantOK: true},
		{suffix: "AI%20101/edit", want: "AI 101", wantOK: true},
		{suffix: "DEL/edit/", want: "DEL", wantOK: true},
		{suffix: "/6E202//edit", want: "6E202", wantOK: true},
		{suffix: "%20/edit", wantOK: false},
		{suffix: "AI101", wantOK: false},
		{suffix: "AI101/delete", wantOK: false},
		{suffix: "AI101/edit/extra", wantOK: false},
		{suffix: "%zz/edit", wantOK: false},
		{suffix: "", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := EditKey(tc.suffix)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("EditKey(%q) = %q, %v; want %q, %v", tc.suffix, got, ok, tc.want, tc.wantOK)
		}
	}
}
