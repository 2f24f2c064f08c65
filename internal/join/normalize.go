// Package join holds the cross-entity logic shared by readers and services:
// company-name normalization, join-map construction, linked-contact
// resolution, and last-activity aggregation.
package join

import (
	"regexp"
	"strings"
)

var parenRe = regexp.MustCompile(`\([^)]*\)`)

// suffixTokens are corporate-entity suffixes stripped during normalization.
// Ordered longest first so compound suffixes win over their tails.
var suffixTokens = []string{
	"co., ltd.",
	"co., ltd",
	"incorporated",
	"corporation",
	"company",
	"limited",
	"l.l.c.",
	"corp.",
	"corp",
	"inc.",
	"inc",
	"ltd.",
	"ltd",
	"llc",
	"gmbh",
	"s.a.",
	"plc",
	"co.",
	"co",
	"ag",
}

// Normalize derives the join key for a company display name: lower-case,
// trim, drop parenthetical segments, strip entity suffixes, collapse
// whitespace. Deterministic and idempotent; both sides of any company
// comparison must go through it.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = parenRe.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")

	for {
		trimmed := strings.TrimRight(s, " ,")
		stripped := false
		for _, suf := range suffixTokens {
			if trimmed == suf {
				trimmed = ""
				stripped = true
				break
			}
			if strings.HasSuffix(trimmed, " "+suf) || strings.HasSuffix(trimmed, ","+suf) {
				trimmed = trimmed[:len(trimmed)-len(suf)]
				stripped = true
				break
			}
		}
		s = strings.TrimRight(strings.TrimSpace(trimmed), " ,")
		if !stripped {
			return s
		}
	}
}

// MatchKey builds the compound key used to recover a potential-contact row
// for an official contact: normalized person name joined with the
// normalized company name.
func MatchKey(name, companyName string) string {
	return Normalize(name) + "|" + Normalize(companyName)
}
