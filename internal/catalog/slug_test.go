package catalog

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		color    string
		expected string
	}{
		{"Royal Banarasi Silk Saree", "Green", "royal-banarasi-silk-saree-green"},
		{"  Multiple   Spaces!!", "", "multiple-spaces"},
		{"Chanderi Cotton Dupatta", "Off White", "chanderi-cotton-dupatta-off-white"},
		{"Kota Doria", "", "kota-doria"},
		{"Saree #7 (Limited)", "Indigo", "saree-7-limited-indigo"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.name, tc.color); got != tc.expected {
			t.Errorf("Slugify(%q, %q) = %q, expected %q", tc.name, tc.color, got, tc.expected)
		}
	}
}

func TestSlugWithID(t *testing.T) {
	if got := SlugWithID("royal-banarasi-silk-saree-green", 42); got != "royal-banarasi-silk-saree-green-42" {
		t.Errorf("unexpected slug: %s", got)
	}
}
