// Package cabin translates between carrier fare-class letters and
// canonical cabin names used across the booking engine.
package cabin

import "strings"

var codeToName = map[string]string{
	"N": "basic_economy",
	"Y": "economy",
	"J": "business",
	"F": "first",
	"W": "premium_economy",
}

var nameToCode = map[string]string{
	"basic_economy":   "N",
	"economy":         "Y",
	"business":        "J",
	"first":           "F",
	"premium_economy": "W",
}

// Normalize maps a carrier fare-class letter to its canonical cabin name.
// The lookup is case-insensitive; unknown inputs are lowercased and passed
// through so that codes outside the table survive a round trip.
func Normalize(code string) string {
	if name, ok := codeToName[strings.ToUpper(code)]; ok {
		return name
	}
	return strings.ToLower(code)
}

// Denormalize maps a canonical cabin name back to the carrier letter.
// Unknown names are returned unchanged.
func Denormalize(name string) string {
	if code, ok := nameToCode[name]; ok {
		return code
	}
	return name
}
