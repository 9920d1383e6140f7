package utils

import (
	"strings"
	"testing"
	"time"
)

func TestSplitTags(t *testing.T) {
	got := SplitTags(" Veg , spicy, veg ,, SPICY ")
	if len(got) != 2 || got[0] != "veg" || got[1] != "spicy" {
		t.Fatalf("got %v, want [veg spicy]", got)
	}
	if got := SplitTags(""); len(got) != 0 {
		t.Fatalf("empty input got %v", got)
	}
}

func TestNewRecipeID(t *testing.T) {
	a := NewRecipeID()
	b := NewRecipeID()
	if a == b {
		t.Fatal("ids collided")
	}
	if !strings.Contains(a, "-") {
		t.Fatalf("id %q missing separator", a)
	}
	if a != strings.ToLower(a) {
		t.Fatalf("id %q not lowercase", a)
	}
}

func TestNowISO(t *testing.T) {
	got := NowISO()
	if _, err := time.Parse(time.RFC3339, got); err != nil {
		t.Fatalf("NowISO %q not RFC3339: %v", got, err)
	}
	if !strings.HasSuffix(got, "Z") {
		t.Fatalf("NowISO %q not UTC", got)
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	if got := GenerateRandomString(12); len(got) != 12 {
		t.Fatalf("len = %d", len(got))
	}
}
