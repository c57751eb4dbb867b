// Package export renders per-student chart pairs and packs them into a zip archive.
package export

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NoName replaces names that sanitize to nothing.
const NoName = "no_name"

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	disallowedRune = regexp.MustCompile(`[^0-9A-Za-zÁÉÍÓÖŐÚÜŰáéíóöőúüű_\-.]`)
)

// SafeFilename turns s into a file name fragment: whitespace runs become a
// single underscore and anything outside ASCII alphanumerics, Hungarian
// accented letters, "_", "-" and "." is dropped.
func SafeFilename(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = disallowedRune.ReplaceAllString(s, "")
	if s == "" {
		return NoName
	}
	return s
}

// ReportName is "{class}__{name}__{kind}.{ext}" with both parts sanitized.
func ReportName(class, name, kind, ext string) string {
	return SafeFilename(class) + "__" + SafeFilename(name) + "__" + kind + "." + ext
}
