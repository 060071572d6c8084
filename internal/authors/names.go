// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import "strings"

// suffixes are generational suffixes kept after the given names on inversion.
var suffixes = map[string]bool{
	"jr": true, "jr.": true, "sr": true, "sr.": true,
	"ii": true, "iii": true, "iv": true,
}

// Invert converts "Jane Doe" to "Doe, Jane" and "Martin Luther King Jr." to
// "King, Martin Luther, Jr.". Names that already contain a comma or are a
// single word are returned unchanged.
func Invert(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, ",") {
		return name
	}
	words := strings.Fields(name)
	suffix := ""
	if n := len(words); n > 2 && suffixes[strings.ToLower(words[n-1])] {
		suffix = words[n-1]
		words = words[:n-1]
	}
	if len(words) < 2 {
		return name
	}
	last := words[len(words)-1]
	inverted := last + ", " + strings.Join(words[:len(words)-1], " ")
	if suffix != "" {
		inverted += ", " + suffix
	}
	return inverted
}

// Natural converts "Doe, Jane" to "Jane Doe". Names without a comma are
// returned with whitespace collapsed.
func Natural(name string) string {
	parts := strings.Split(name, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch {
	case len(parts) == 2 && parts[1] != "":
		return parts[1] + " " + parts[0]
	case len(parts) == 3 && parts[1] != "":
		return parts[1] + " " + parts[0] + " " + parts[2]
	}
	return strings.Join(strings.Fields(name), " ")
}

// LastName returns the surname of name: the text before the first comma of
// an inverted name, else the final word ignoring generational suffixes.
func LastName(name string) string {
	name = strings.TrimSpace(name)
	if before, _, ok := strings.Cut(name, ","); ok {
		return strings.TrimSpace(before)
	}
	words := strings.Fields(name)
	if n := len(words); n > 2 && suffixes[strings.ToLower(words[n-1])] {
		words = words[:n-1]
	}
	if len(words) == 0 {
		return ""
	}
	return words[len(words)-1]
}
