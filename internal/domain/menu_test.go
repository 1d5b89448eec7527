package domain

import "testing"

func TestNormalizeItemName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Iced  Tea", "iced-tea"},
		{"iced tea", "iced-tea"},
		{"  Chicken   BURGER  ", "chicken-burger"},
		{"fries", "fries"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeItemName(tc.in); got != tc.want {
			t.Errorf("NormalizeItemName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"iced-tea", "Iced Tea"},
		{"chicken-burger", "Chicken Burger"},
		{"fries", "Fries"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.in); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range MenuCategories {
		if !ValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if ValidCategory("desserts") {
		t.Error("expected desserts to be invalid")
	}
}
