package nuspell

import (
	"strconv"
	"unicode/utf8"
)

// decodeFlags decodes a single whitespace-delimited flag token according to
// mode, emitting warnings to sink for any malformed or out-of-range data
// but always returning the best recoverable flag set (per spec.md §7,
// FlagSyntax and friends are warnings, never fatal).
func decodeFlags(token string, mode FlagMode, enc string, sink DiagnosticSink, file string, line int) FlagSet {
	switch mode {
	case DoubleChar:
		return decodeDoubleCharFlags(token, sink, file, line)
	case DecimalNumber:
		return decodeDecimalFlags(token, sink, file, line)
	case Utf8Bmp:
		return decodeUtf8BmpFlags(token, enc, sink, file, line)
	default:
		return decodeSingleCharFlags(token, enc, sink, file, line)
	}
}

// decodeSingleFlag decodes token and returns its first flag, or NoFlag if
// the token decoded to an empty set.
func decodeSingleFlag(token string, mode FlagMode, enc string, sink DiagnosticSink, file string, line int) Flag {
	s := decodeFlags(token, mode, enc, sink, file, line)
	if s.Len() == 0 {
		return NoFlag
	}
	return s.Slice()[0]
}

func addFlagChecked(s *FlagSet, f Flag, sink DiagnosticSink, file string, line int) {
	if f == HiddenHomonymFlag {
		sink.Warn(Diagnostic{Kind: ErrKindFlagSyntax, File: file, Line: line,
			Msg: "flag 0xFFFF is reserved for hidden homonyms and cannot be user-declared"})
		return
	}
	s.Add(f)
}

func decodeSingleCharFlags(token string, enc string, sink DiagnosticSink, file string, line int) FlagSet {
	var out FlagSet
	if token == "" {
		return out
	}
	if normalizeEncoding(enc) == "UTF-8" {
		for i := 0; i < len(token); i++ {
			if token[i] >= 0x80 {
				sink.Warn(Diagnostic{Kind: ErrKindInvalidUtf8, File: file, Line: line,
					Msg: "UTF-8 declared but flag token has non-ASCII bytes in SingleChar mode"})
				break
			}
		}
	}
	for i := 0; i < len(token); i++ {
		addFlagChecked(&out, Flag(token[i]), sink, file, line)
	}
	return out
}

func decodeDoubleCharFlags(token string, sink DiagnosticSink, file string, line int) FlagSet {
	var out FlagSet
	n := len(token)
	for i := 0; i+1 < n; i += 2 {
		f := Flag(token[i])<<8 | Flag(token[i+1])
		addFlagChecked(&out, f, sink, file, line)
	}
	if n%2 == 1 {
		addFlagChecked(&out, Flag(token[n-1]), sink, file, line)
	}
	return out
}

func decodeDecimalFlags(token string, sink DiagnosticSink, file string, line int) FlagSet {
	var out FlagSet
	i := 0
	n := len(token)
	for {
		start := i
		for i < n && token[i] >= '0' && token[i] <= '9' {
			i++
		}
		if i == start {
			sink.Warn(Diagnostic{Kind: ErrKindFlagSyntax, File: file, Line: line,
				Msg: "expected a decimal flag number"})
			return out
		}
		v, err := strconv.ParseUint(token[start:i], 10, 32)
		if err != nil || v >= 0x10000 {
			sink.Warn(Diagnostic{Kind: ErrKindFlagSyntax, File: file, Line: line,
				Msg: "decimal flag value out of 16-bit range: " + token[start:i]})
		} else {
			addFlagChecked(&out, Flag(v), sink, file, line)
		}
		if i >= n {
			return out
		}
		if token[i] != ',' {
			sink.Warn(Diagnostic{Kind: ErrKindFlagSyntax, File: file, Line: line,
				Msg: "expected ',' between decimal flags, found: " + string(token[i])})
			return out
		}
		i++
		if i >= n {
			sink.Warn(Diagnostic{Kind: ErrKindFlagSyntax, File: file, Line: line,
				Msg: "comma not followed by a number in decimal flag list"})
			return out
		}
	}
}

func decodeUtf8BmpFlags(token string, enc string, sink DiagnosticSink, file string, line int) FlagSet {
	var out FlagSet
	if normalizeEncoding(enc) != "UTF-8" && enc != "" {
		sink.Warn(Diagnostic{Kind: ErrKindInvalidUtf8, File: file, Line: line,
			Msg: "FLAG UTF-8 declared but SET encoding is not UTF-8"})
	}
	for _, r := range token {
		if r == utf8.RuneError {
			sink.Warn(Diagnostic{Kind: ErrKindInvalidUtf8, File: file, Line: line,
				Msg: "invalid UTF-8 in flag token"})
			continue
		}
		if r > 0xFFFF {
			sink.Warn(Diagnostic{Kind: ErrKindNonBmpFlag, File: file, Line: line,
				Msg: "flag code point outside the BMP, skipped"})
			continue
		}
		addFlagChecked(&out, Flag(r), sink, file, line)
	}
	return out
}

// AliasTables holds the AF (flag-set alias) and AM (morphological-field
// alias) tables, resolved by 1-based decimal index.
type AliasTables struct {
	AF []FlagSet
	AM [][]string
}

// decodeFlagsOrAlias decodes a flag field, honoring AF alias indirection
// when the alias table is non-empty: the field is then a 1-based decimal
// index into it rather than a literal flag list (spec.md §4.2).
func decodeFlagsOrAlias(token string, mode FlagMode, enc string, af []FlagSet, sink DiagnosticSink, file string, line int) FlagSet {
	if len(af) == 0 {
		return decodeFlags(token, mode, enc, sink, file, line)
	}
	idx, err := strconv.Atoi(token)
	if err != nil || idx < 1 || idx > len(af) {
		sink.Warn(Diagnostic{Kind: ErrKindAliasIndex, File: file, Line: line,
			Msg: "AF alias index out of range: " + token})
		return FlagSet{}
	}
	return af[idx-1]
}

// resolveAMAlias resolves a morphological-field token through the AM
// table the same way decodeFlagsOrAlias resolves AF.
func resolveAMAlias(token string, am [][]string, sink DiagnosticSink, file string, line int) []string {
	if len(am) == 0 {
		return nil
	}
	idx, err := strconv.Atoi(token)
	if err != nil || idx < 1 || idx > len(am) {
		sink.Warn(Diagnostic{Kind: ErrKindAliasIndex, File: file, Line: line,
			Msg: "AM alias index out of range: " + token})
		return nil
	}
	return am[idx-1]
}
