/*
Package nuspell loads a Hunspell-compatible affix file (.aff) and word-list
file (.dic) into an in-memory snapshot suitable for a downstream
spellcheck/suggest pipeline.

The package builds a flag model, prefix/suffix tables, compound rules,
substring-rewrite tables, break-point tables and a word map from the two
input files. It does not spellcheck or suggest corrections itself; it only
produces the typed, immutable snapshot consumers operate on.

Call Load (or LoadFromReaders) once per dictionary:

	data, err := nuspell.Load("en_US.aff", "en_US.dic")

The returned *AffixData is never mutated after Load returns and is safe
for concurrent reads.
*/
package nuspell

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'nuspell'
func tracer() tracing.Trace {
	return tracing.Select("nuspell")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
