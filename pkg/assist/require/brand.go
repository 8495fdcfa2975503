package require

import "strings"

// productLineBrands maps product-line mentions to the brand they imply.
// Checked before direct brand-name matching so "I want a macbook" yields
// brand "apple" even though the word never appears.
var productLineBrands = []struct {
	Line  string
	Brand string
}{
	{"galaxy", "samsung"},
	{"iphone", "apple"},
	{"macbook", "apple"},
	{"ipad", "apple"},
	{"airpods", "apple"},
	{"pixel", "google"},
	{"xps", "dell"},
	{"inspiron", "dell"},
	{"rog", "asus"},
	{"zephyrus", "asus"},
	{"thinkpad", "lenovo"},
	{"legion", "lenovo"},
	{"yoga", "lenovo"},
	{"pavilion", "hp"},
	{"omen", "hp"},
	{"razr", "motorola"},
	{"xperia", "sony"},
	{"bravia", "sony"},
	{"playstation", "sony"},
	{"surface", "microsoft"},
	{"xbox", "microsoft"},
	{"oneplus", "oneplus"},
}

var knownBrands = []string{
	"apple", "samsung", "sony", "lg", "dell", "hp", "lenovo", "asus", "acer",
	"msi", "microsoft", "google", "oneplus", "xiaomi", "motorola", "nothing",
	"realme", "blackview", "tcl", "hisense", "vizio", "philips", "sharp",
	"panasonic", "toshiba", "nintendo", "bose", "jbl", "sennheiser",
}

// InferBrand extracts a brand preference from free text. Product-line
// associations win over literal brand names; "not <brand>" phrasing
// suppresses that brand entirely.
func InferBrand(text string) string {
	lower := strings.ToLower(text)

	for _, assoc := range productLineBrands {
		if strings.Contains(lower, assoc.Line) && !isNegated(lower, assoc.Brand) && !isNegated(lower, assoc.Line) {
			return assoc.Brand
		}
	}

	for _, brand := range knownBrands {
		if strings.Contains(lower, brand) && !isNegated(lower, brand) {
			return brand
		}
	}

	return ""
}

// isNegated reports "not X" / "no X" / "anything but X" phrasing for term.
func isNegated(lower, term string) bool {
	for _, prefix := range []string{"not ", "no ", "anything but ", "except ", "avoid "} {
		if strings.Contains(lower, prefix+term) {
			return true
		}
	}
	return false
}
