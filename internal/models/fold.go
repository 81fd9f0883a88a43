package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// FoldKey returns the comparison key for a user-typed name: trimmed, NFC
// normalized and case folded, so "Straße", "STRASSE" and a decomposed
// "straße" all compare equal.
func FoldKey(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}
