// Package aff is the syntax-level line parser for Hunspell .aff affix
// files. It classifies each line by command category and captures the
// raw fields; it never builds a FlagSet or compiles a regex itself, to
// keep this package free of any dependency on the semantic engine types
// (so the engine package can depend on aff without an import cycle).
package aff

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shannonyu/nuspell/linescan"
)

// FlagMode mirrors the semantic engine's FlagMode one-for-one; it exists
// here only so a raw flag-bearing field can be stamped with the mode that
// was active when it was read, without this package importing the engine
// package (see DESIGN.md).
type FlagMode int

const (
	SingleChar FlagMode = iota
	DoubleChar
	DecimalNumber
	Utf8Bmp
)

// WarnKind tags the category of a syntax-level warning, so the caller can
// map it onto its own diagnostic-kind enum without this package needing
// to know that enum.
type WarnKind int

const (
	WarnGeneric WarnKind = iota
	WarnZeroCount
	WarnExtraEntry
	WarnAffixHeader
	WarnMissingFlag
	WarnUnknownCommand
	WarnUnknownFlagType
	WarnEncodingSetTwice
	WarnInvalidUTF8
)

// Warning is one non-fatal parse event.
type Warning struct {
	Kind WarnKind
	Line int
	Msg  string
}

// WarnFunc receives warnings as they occur, in line order.
type WarnFunc func(Warning)

// ScalarString is a first-occurrence-wins string command's value.
type ScalarString struct {
	Value string
	Line  int
}

// FlagField is a raw, not-yet-decoded flag-bearing field, stamped with
// the mode/encoding state active when it was read.
type FlagField struct {
	Token    string
	Mode     FlagMode
	Encoding string
	Line     int
}

// CountedEntry is one data line of a counted-vector family.
type CountedEntry struct {
	Fields []string
	Line   int
}

// AffixHeader is the first PFX/SFX line for a given flag.
type AffixHeader struct {
	Flag         string
	CrossProduct bool
	Count        int
	Mode         FlagMode
	Encoding     string
	Line         int
}

// AffixEntryLine is one PFX/SFX data line.
type AffixEntryLine struct {
	Flag       string
	Stripping  string
	Appending  string
	FlagsToken string // text after an unescaped '/' in Appending; "" if none
	Mode       FlagMode
	Encoding   string
	Condition  string
	Morph      []string
	Line       int
}

// AffixGroup is one flag's full PFX or SFX block.
type AffixGroup struct {
	Kind    string // "PFX" or "SFX"
	Header  AffixHeader
	Entries []AffixEntryLine
}

// Raw is the complete syntax-level parse of one .aff file.
type Raw struct {
	Scalars      map[string]ScalarString
	Bools        map[string]bool
	Shorts       map[string]ScalarString
	FlagValues   map[string]FlagField
	Counted      map[string][]CountedEntry
	CountedSeen  map[string]bool
	AffixGroups  []*AffixGroup
	FlagModeDecl string // "", "LONG", "NUM", or "UTF-8"; upper-cased, with UTF8 stored as "UTF-8"
	SyllableNum  *FlagField

	CompoundSyllableMax    string
	CompoundSyllableVowels string
}

var scalarStringCommands = map[string]bool{
	"LANG": true, "IGNORE": true, "KEY": true, "TRY": true, "WORDCHARS": true,
}

var boolCommands = map[string]bool{
	"COMPLEXPREFIXES": true, "ONLYMAXDIFF": true, "NOSPLITSUGS": true,
	"SUGSWITHDOTS": true, "FORBIDWARN": true, "COMPOUNDMORESUFFIXES": true,
	"CHECKCOMPOUNDDUP": true, "CHECKCOMPOUNDREP": true, "CHECKCOMPOUNDCASE": true,
	"CHECKCOMPOUNDTRIPLE": true, "SIMPLIFIEDTRIPLE": true, "FULLSTRIP": true,
	"CHECKSHARPS": true,
}

var shortIntCommands = map[string]bool{
	"MAXCPDSUGS": true, "MAXNGRAMSUGS": true, "MAXDIFF": true,
	"COMPOUNDMIN": true, "COMPOUNDWORDMAX": true,
}

var flagValueCommands = map[string]bool{
	"NOSUGGEST": true, "WARN": true, "COMPOUNDFLAG": true, "COMPOUNDBEGIN": true,
	"COMPOUNDLAST": true, "COMPOUNDMIDDLE": true, "COMPOUNDROOT": true,
	"ONLYINCOMPOUND": true, "COMPOUNDPERMITFLAG": true, "COMPOUNDFORBIDFLAG": true,
	"FORCEUCASE": true, "CIRCUMFIX": true, "FORBIDDENWORD": true, "KEEPCASE": true,
	"NEEDAFFIX": true, "SUBSTANDARD": true,
}

var countedCommands = map[string]bool{
	"MAP": true, "REP": true, "PHONE": true, "ICONV": true, "OCONV": true,
	"AF": true, "AM": true, "BREAK": true, "CHECKCOMPOUNDPATTERN": true,
	"COMPOUNDRULE": true,
}

// countedState tracks one counted family's remaining-entries budget.
type countedState struct {
	remaining int
	started   bool
}

// Parse reads a complete .aff stream, classifying every line. warn, if
// non-nil, receives every non-fatal diagnostic in line order. The only
// error Parse returns is an I/O failure from the reader.
func Parse(name string, r io.Reader, warn WarnFunc) (*Raw, error) {
	if warn == nil {
		warn = func(Warning) {}
	}
	raw := &Raw{
		Scalars:     make(map[string]ScalarString),
		Bools:       make(map[string]bool),
		Shorts:      make(map[string]ScalarString),
		FlagValues:  make(map[string]FlagField),
		Counted:     make(map[string][]CountedEntry),
		CountedSeen: make(map[string]bool),
	}
	groupsByFlag := make(map[string]*AffixGroup) // keyed "PFX:flag" / "SFX:flag"
	counts := make(map[string]*countedState)
	mode := SingleChar
	encoding := ""

	lines, err := linescan.ReadAllLines(r)
	if err != nil {
		return nil, err
	}
	for _, ln := range lines {
		if isUTF8Encoding(encoding) && !utf8.Valid(ln.Bytes) {
			warn(Warning{Kind: WarnInvalidUTF8, Line: ln.Number, Msg: "line is not valid UTF-8"})
		}
		text := string(ln.Bytes)
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		cmd := strings.ToUpper(fields[0])
		rest := fields[1:]

		switch {
		case cmd == "SET":
			if encoding != "" {
				warn(Warning{Kind: WarnEncodingSetTwice, Line: ln.Number, Msg: "SET given more than once"})
				continue
			}
			if len(rest) > 0 {
				encoding = rest[0]
				raw.Scalars["SET"] = ScalarString{Value: rest[0], Line: ln.Number}
			}
		case cmd == "FLAG":
			if len(rest) == 0 {
				warn(Warning{Kind: WarnMissingFlag, Line: ln.Number, Msg: "FLAG with no value"})
				continue
			}
			v := strings.ToUpper(rest[0])
			switch v {
			case "LONG":
				mode, raw.FlagModeDecl = DoubleChar, "LONG"
			case "NUM":
				mode, raw.FlagModeDecl = DecimalNumber, "NUM"
			case "UTF-8", "UTF8":
				mode, raw.FlagModeDecl = Utf8Bmp, "UTF-8"
			default:
				warn(Warning{Kind: WarnUnknownFlagType, Line: ln.Number, Msg: "unknown FLAG type: " + rest[0]})
			}
		case cmd == "PFX" || cmd == "SFX":
			parseAffixLine(raw, groupsByFlag, cmd, rest, mode, encoding, ln.Number, warn)
		case cmd == "COMPOUNDSYLLABLE":
			if len(rest) >= 1 {
				raw.CompoundSyllableMax = rest[0]
			}
			if len(rest) >= 2 {
				raw.CompoundSyllableVowels = rest[1]
			}
		case cmd == "SYLLABLENUM":
			if len(rest) == 0 {
				warn(Warning{Kind: WarnMissingFlag, Line: ln.Number, Msg: "SYLLABLENUM with no value"})
				continue
			}
			raw.SyllableNum = &FlagField{Token: rest[0], Mode: mode, Encoding: encoding, Line: ln.Number}
		case scalarStringCommands[cmd]:
			if _, exists := raw.Scalars[cmd]; exists {
				warn(Warning{Kind: WarnEncodingSetTwice, Line: ln.Number, Msg: cmd + " given more than once"})
				continue
			}
			raw.Scalars[cmd] = ScalarString{Value: strings.Join(rest, " "), Line: ln.Number}
		case boolCommands[cmd]:
			raw.Bools[cmd] = true
		case shortIntCommands[cmd]:
			if len(rest) == 0 {
				warn(Warning{Kind: WarnMissingFlag, Line: ln.Number, Msg: cmd + " with no value"})
				continue
			}
			raw.Shorts[cmd] = ScalarString{Value: rest[0], Line: ln.Number}
		case flagValueCommands[cmd]:
			if len(rest) == 0 {
				warn(Warning{Kind: WarnMissingFlag, Line: ln.Number, Msg: cmd + " with no value"})
				continue
			}
			raw.FlagValues[cmd] = FlagField{Token: rest[0], Mode: mode, Encoding: encoding, Line: ln.Number}
		case countedCommands[cmd]:
			parseCountedLine(raw, counts, cmd, rest, ln.Number, warn)
		default:
			warn(Warning{Kind: WarnUnknownCommand, Line: ln.Number, Msg: "unknown command: " + fields[0]})
		}
	}
	return raw, nil
}

func parseCountedLine(raw *Raw, counts map[string]*countedState, cmd string, rest []string, line int, warn WarnFunc) {
	st, started := counts[cmd]
	if !started {
		st = &countedState{}
		counts[cmd] = st
	}
	if !st.started {
		st.started = true
		raw.CountedSeen[cmd] = true
		if len(rest) == 0 {
			warn(Warning{Kind: WarnZeroCount, Line: line, Msg: cmd + " header missing its count"})
			st.remaining = 0
			return
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil || n < 0 {
			warn(Warning{Kind: WarnZeroCount, Line: line, Msg: cmd + " header has a non-numeric count: " + rest[0]})
			st.remaining = 0
			return
		}
		st.remaining = n
		return
	}
	if st.remaining <= 0 {
		warn(Warning{Kind: WarnExtraEntry, Line: line, Msg: cmd + " has more entries than its declared count"})
		return
	}
	st.remaining--
	raw.Counted[cmd] = append(raw.Counted[cmd], CountedEntry{Fields: rest, Line: line})
}

func parseAffixLine(raw *Raw, groups map[string]*AffixGroup, kind string, rest []string, mode FlagMode, encoding string, line int, warn WarnFunc) {
	if len(rest) == 0 {
		warn(Warning{Kind: WarnAffixHeader, Line: line, Msg: kind + " line with no flag"})
		return
	}
	flag := rest[0]
	key := kind + ":" + flag
	g, exists := groups[key]
	if !exists {
		// Header line: FLAG cross_product count.
		if len(rest) < 3 {
			warn(Warning{Kind: WarnAffixHeader, Line: line, Msg: kind + " header missing cross-product or count"})
			g = &AffixGroup{Kind: kind, Header: AffixHeader{Flag: flag, Mode: mode, Encoding: encoding, Line: line}}
			groups[key] = g
			raw.AffixGroups = append(raw.AffixGroups, g)
			return
		}
		cross := strings.EqualFold(rest[1], "Y")
		count, err := strconv.Atoi(rest[2])
		if err != nil || count < 0 {
			warn(Warning{Kind: WarnAffixHeader, Line: line, Msg: kind + " header has a non-numeric count: " + rest[2]})
			count = 0
		}
		g = &AffixGroup{Kind: kind, Header: AffixHeader{Flag: flag, CrossProduct: cross, Count: count, Mode: mode, Encoding: encoding, Line: line}}
		groups[key] = g
		raw.AffixGroups = append(raw.AffixGroups, g)
		return
	}
	if len(g.Entries) >= g.Header.Count {
		warn(Warning{Kind: WarnExtraEntry, Line: line, Msg: kind + " " + flag + " has more entries than its declared count"})
		return
	}
	// Entry line: FLAG stripping appending[/flags] condition [morph...].
	if len(rest) < 3 {
		warn(Warning{Kind: WarnAffixHeader, Line: line, Msg: kind + " entry missing fields"})
		return
	}
	stripping := rest[1]
	appendField := rest[2]
	appending, flagsToken := splitUnescapedSlash(appendField)
	condition := "."
	var morph []string
	if len(rest) >= 4 {
		condition = rest[3]
	}
	if len(rest) >= 5 {
		morph = rest[4:]
	}
	g.Entries = append(g.Entries, AffixEntryLine{
		Flag: flag, Stripping: stripping, Appending: appending, FlagsToken: flagsToken,
		Mode: mode, Encoding: encoding, Condition: condition, Morph: morph, Line: line,
	})
}

// isUTF8Encoding mirrors the engine's normalizeEncoding synonym handling
// for the one comparison this package needs (SET's value naming UTF-8),
// to avoid importing the engine package (see DESIGN.md).
func isUTF8Encoding(enc string) bool {
	u := strings.ToUpper(enc)
	return u == "UTF-8" || u == "UTF8"
}

// splitUnescapedSlash splits s at its first unescaped '/', returning the
// text before it and the text after; if there is none, the second value
// is "". A '\/' is unescaped back to '/' in the returned head.
func splitUnescapedSlash(s string) (head, tail string) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '/' {
			b.WriteByte('/')
			i++
			continue
		}
		if s[i] == '/' {
			return b.String(), s[i+1:]
		}
		b.WriteByte(s[i])
	}
	return b.String(), ""
}
