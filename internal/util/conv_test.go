package util

import "testing"

func TestMustParseUint(t *testing.T) {
	if got := MustParseUint("42"); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := MustParseUint("abc"); got != 0 {
		t.Fatalf("expected 0 for garbage, got %d", got)
	}
	if got := MustParseUint("-1"); got != 0 {
		t.Fatalf("expected 0 for negative, got %d", got)
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"", "", 1, 20},
		{"3", "50", 3, 50},
		{"0", "0", 1, 20},
		{"-2", "500", 1, 20},
		{"abc", "xyz", 1, 20},
	}
	for _, c := range cases {
		page, limit := ParsePagination(c.page, c.limit)
		if page != c.wantPage || limit != c.wantLimit {
			t.Fatalf("ParsePagination(%q, %q) = (%d, %d), want (%d, %d)",
				c.page, c.limit, page, limit, c.wantPage, c.wantLimit)
		}
	}
}
