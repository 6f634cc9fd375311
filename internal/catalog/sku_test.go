package catalog

import (
	"regexp"
	"testing"
)

func TestGenerateSKUWithColor(t *testing.T) {
	pattern := regexp.MustCompile(`^CI-BLUE-[A-Z0-9]{3}$`)
	for i := 0; i < 50; i++ {
		sku := GenerateSKU("Chanderi Indigo", "Blue")
		if !pattern.MatchString(sku) {
			t.Fatalf("unexpected sku format: %s", sku)
		}
	}
}

func TestGenerateSKUWithoutColor(t *testing.T) {
	pattern := regexp.MustCompile(`^S-DEFAULT-[A-Z0-9]{3}$`)
	if sku := GenerateSKU("Saree", ""); !pattern.MatchString(sku) {
		t.Fatalf("unexpected sku format: %s", sku)
	}
}

func TestGenerateSKUMultiWordColor(t *testing.T) {
	pattern := regexp.MustCompile(`^RBSS-OFF-WHITE-[A-Z0-9]{3}$`)
	if sku := GenerateSKU("Royal Banarasi Silk Saree", "Off White"); !pattern.MatchString(sku) {
		t.Fatalf("unexpected sku format: %s", sku)
	}
}
