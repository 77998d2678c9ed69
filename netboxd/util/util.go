package util

import (
	"strings"
	"unicode"
)

func checkInRange(name string, myRT *unicode.RangeTable) bool {
	for _, i := range name {
		if !unicode.In(i, myRT) {
			return false
		}
	}

	return true
}

func ContainsStr(elems []string, v string) bool {
	for _, s := range elems {
		if v == s {
			return true
		}
	}

	return false
}

func ValidObjectName(name string) bool {
	if name == "" || len(name) > 100 {
		return false
	}

	// values must be kept sorted
	var myRT = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x0020, 0x0020, 1}, // space
			{0x0026, 0x0026, 1}, // &
			{0x002d, 0x002e, 1}, // - .
			{0x0030, 0x0039, 1}, // numbers
			{0x0041, 0x005a, 1}, // upper case letters
			{0x005f, 0x005f, 1}, // _
			{0x0061, 0x007a, 1}, // lower case letters
		},
		LatinOffset: 0,
	}

	if strings.HasPrefix(name, " ") || strings.HasSuffix(name, " ") {
		return false
	}

	return checkInRange(name, myRT)
}

func ValidSlug(slug string) bool {
	if slug == "" || len(slug) > 50 {
		return false
	}

	// values must be kept sorted
	var myRT = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x002d, 0x002d, 1}, // -
			{0x0030, 0x0039, 1}, // numbers
			{0x005f, 0x005f, 1}, // _
			{0x0061, 0x007a, 1}, // lower case letters
		},
		LatinOffset: 0,
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return false
	}

	return checkInRange(slug, myRT)
}

func ValidCircuitID(cid string) bool {
	if cid == "" || len(cid) > 50 {
		return false
	}

	// values must be kept sorted
	var myRT = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x002d, 0x002f, 1}, // - . /
			{0x0030, 0x003a, 1}, // numbers :
			{0x0041, 0x005a, 1}, // upper case letters
			{0x005f, 0x005f, 1}, // _
			{0x0061, 0x007a, 1}, // lower case letters
		},
		LatinOffset: 0,
	}

	return checkInRange(cid, myRT)
}

// Slugify derives a URL slug from a display name the way the web UI
// pre-fills slug fields.
func Slugify(name string) string {
	var builder strings.Builder

	prevDash := false

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			builder.WriteRune(r)

			prevDash = false
		case r == '_':
			builder.WriteRune(r)

			prevDash = false
		default:
			if !prevDash && builder.Len() > 0 {
				builder.WriteRune('-')

				prevDash = true
			}
		}
	}

	return strings.TrimSuffix(builder.String(), "-")
}
