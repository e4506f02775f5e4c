package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// kcal per gram
const (
	ProteinKcal      = 4.0
	CarbohydrateKcal = 4.0
	FatKcal          = 9.0
)

// Calories derives energy from macros. Never store a calorie value that did
// not come from here.
func Calories(protein, carbohydrates, fat float64) float64 {
	return protein*ProteinKcal + carbohydrates*CarbohydrateKcal + fat*FatKcal
}

// CapitalizeName upper-cases the first letter and lower-cases the rest,
// so "cHICKEN breast" and "Chicken Breast" both become "Chicken breast".
func CapitalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}
