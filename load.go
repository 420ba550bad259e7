package nuspell

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shannonyu/nuspell/aff"
	"github.com/shannonyu/nuspell/dic"
)

// LoadOption configures an optional aspect of Load/LoadFromReaders.
type LoadOption func(*loadConfig)

type loadConfig struct {
	sink             DiagnosticSink
	locale           *caseFolder
	maxPreallocWords int
}

const defaultMaxPreallocWords = 8_000_000

// WithDiagnosticSink overrides the default tracing-backed sink.
func WithDiagnosticSink(sink DiagnosticSink) LoadOption {
	return func(c *loadConfig) { c.sink = sink }
}

// WithLocale installs locale-specific upper/lower folding functions, used
// by casing classification and the word map's hidden-homonym synthesis
// (spec.md §4.7's "locale" parameter).
func WithLocale(upper, lower func(rune) rune) LoadOption {
	return func(c *loadConfig) { c.locale = &caseFolder{upper: upper, lower: lower} }
}

// WithMaxPreallocWords bounds how many dic entries the loader will
// pre-size storage for from the declared word count header, guarding
// against a pathological header value driving an oversized allocation
// (ErrKindResourceLimit); it never rejects the dictionary itself, only
// the pre-sizing hint.
func WithMaxPreallocWords(n int) LoadOption {
	return func(c *loadConfig) { c.maxPreallocWords = n }
}

func newLoadConfig(opts []LoadOption) *loadConfig {
	c := &loadConfig{sink: tracingSink{}, maxPreallocWords: defaultMaxPreallocWords}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads an affix file and a word-list file from disk and builds an
// AffixData snapshot (spec.md §6).
func Load(affPath, dicPath string, opts ...LoadOption) (*AffixData, error) {
	af, err := os.Open(affPath)
	if err != nil {
		return nil, fatalf(ErrKindIO, affPath, 0, "%w", err)
	}
	defer af.Close()
	df, err := os.Open(dicPath)
	if err != nil {
		return nil, fatalf(ErrKindIO, dicPath, 0, "%w", err)
	}
	defer df.Close()
	return loadData(affPath, af, dicPath, df, opts)
}

// LoadFromReaders is the streaming-input counterpart to Load.
func LoadFromReaders(affR, dicR io.Reader, opts ...LoadOption) (*AffixData, error) {
	return loadData("aff", affR, "dic", dicR, opts)
}

func modeConv(m aff.FlagMode) FlagMode {
	switch m {
	case aff.DoubleChar:
		return DoubleChar
	case aff.DecimalNumber:
		return DecimalNumber
	case aff.Utf8Bmp:
		return Utf8Bmp
	default:
		return SingleChar
	}
}

func loadData(affName string, affR io.Reader, dicName string, dicR io.Reader, opts []LoadOption) (*AffixData, error) {
	cfg := newLoadConfig(opts)
	sink := cfg.sink

	rawAff, err := aff.Parse(affName, affR, func(w aff.Warning) {
		sink.Warn(Diagnostic{Kind: mapAffWarnKind(w.Kind), File: affName, Line: w.Line, Msg: w.Msg})
	})
	if err != nil {
		return nil, fatalf(ErrKindIO, affName, 0, "%w", err)
	}

	data := newAffixData()
	encoding := rawAff.Scalars["SET"].Value
	if encoding == "" {
		encoding = DefaultEncoding
	}
	data.Encoding = encoding
	data.Wide = normalizeEncoding(encoding) == "UTF-8"
	mode := SingleChar
	switch rawAff.FlagModeDecl {
	case "LONG":
		mode = DoubleChar
	case "NUM":
		mode = DecimalNumber
	case "UTF-8":
		mode = Utf8Bmp
	}
	data.FlagMode = mode
	data.Language = rawAff.Scalars["LANG"].Value
	data.Ignore = rawAff.Scalars["IGNORE"].Value
	data.Key = rawAff.Scalars["KEY"].Value
	data.Try = rawAff.Scalars["TRY"].Value
	data.WordChars = rawAff.Scalars["WORDCHARS"].Value
	for _, r := range transcodeToWide(data.Ignore, data.Wide, encoding) {
		data.IgnoreChars.Add(Flag(r))
	}

	data.ComplexPrefixes = rawAff.Bools["COMPLEXPREFIXES"]
	data.OnlyMaxDiff = rawAff.Bools["ONLYMAXDIFF"]
	data.NoSplitSugs = rawAff.Bools["NOSPLITSUGS"]
	data.SugsWithDots = rawAff.Bools["SUGSWITHDOTS"]
	data.ForbidWarn = rawAff.Bools["FORBIDWARN"]
	data.CompoundMoreSuffixes = rawAff.Bools["COMPOUNDMORESUFFIXES"]
	data.CheckCompoundDup = rawAff.Bools["CHECKCOMPOUNDDUP"]
	data.CheckCompoundRep = rawAff.Bools["CHECKCOMPOUNDREP"]
	data.CheckCompoundCase = rawAff.Bools["CHECKCOMPOUNDCASE"]
	data.CheckCompoundTriple = rawAff.Bools["CHECKCOMPOUNDTRIPLE"]
	data.SimplifiedTriple = rawAff.Bools["SIMPLIFIEDTRIPLE"]
	data.FullStrip = rawAff.Bools["FULLSTRIP"]
	data.CheckSharps = rawAff.Bools["CHECKSHARPS"]

	data.MaxCpdSugs = shortOf(rawAff, "MAXCPDSUGS", sink, affName)
	data.MaxNgramSugs = shortOf(rawAff, "MAXNGRAMSUGS", sink, affName)
	data.MaxDiff = shortOf(rawAff, "MAXDIFF", sink, affName)
	if _, ok := rawAff.Shorts["COMPOUNDMIN"]; ok {
		data.CompoundMin = shortOf(rawAff, "COMPOUNDMIN", sink, affName)
	}
	data.CompoundWordMax = shortOf(rawAff, "COMPOUNDWORDMAX", sink, affName)

	data.NoSuggestFlag = flagValueOf(rawAff, "NOSUGGEST", sink, affName)
	data.WarnFlag = flagValueOf(rawAff, "WARN", sink, affName)
	data.CompoundFlag = flagValueOf(rawAff, "COMPOUNDFLAG", sink, affName)
	data.CompoundBeginFlag = flagValueOf(rawAff, "COMPOUNDBEGIN", sink, affName)
	data.CompoundLastFlag = flagValueOf(rawAff, "COMPOUNDLAST", sink, affName)
	data.CompoundMiddleFlag = flagValueOf(rawAff, "COMPOUNDMIDDLE", sink, affName)
	data.CompoundRootFlag = flagValueOf(rawAff, "COMPOUNDROOT", sink, affName)
	data.OnlyInCompoundFlag = flagValueOf(rawAff, "ONLYINCOMPOUND", sink, affName)
	data.CompoundPermitFlag = flagValueOf(rawAff, "COMPOUNDPERMITFLAG", sink, affName)
	data.CompoundForbidFlag = flagValueOf(rawAff, "COMPOUNDFORBIDFLAG", sink, affName)
	data.ForceUCaseFlag = flagValueOf(rawAff, "FORCEUCASE", sink, affName)
	data.CircumfixFlag = flagValueOf(rawAff, "CIRCUMFIX", sink, affName)
	data.ForbiddenWordFlag = flagValueOf(rawAff, "FORBIDDENWORD", sink, affName)
	data.KeepCaseFlag = flagValueOf(rawAff, "KEEPCASE", sink, affName)
	data.NeedAffixFlag = flagValueOf(rawAff, "NEEDAFFIX", sink, affName)
	data.SubstandardFlag = flagValueOf(rawAff, "SUBSTANDARD", sink, affName)

	// AF must be decoded before anything that might alias into it.
	for _, e := range rawAff.Counted["AF"] {
		tok := ""
		if len(e.Fields) > 0 {
			tok = e.Fields[0]
		}
		data.Aliases.AF = append(data.Aliases.AF, decodeFlags(tok, mode, encoding, sink, affName, e.Line))
	}
	for _, e := range rawAff.Counted["AM"] {
		data.Aliases.AM = append(data.Aliases.AM, append([]string(nil), e.Fields...))
	}

	var repRules, iconvRules, oconvRules []replRule
	for _, e := range rawAff.Counted["REP"] {
		if len(e.Fields) >= 2 {
			repRules = append(repRules, replRule{From: e.Fields[0], To: e.Fields[1]})
		}
	}
	data.Replacer = newSubstringReplacer(repRules)
	for _, e := range rawAff.Counted["ICONV"] {
		if len(e.Fields) >= 2 {
			iconvRules = append(iconvRules, replRule{From: e.Fields[0], To: e.Fields[1]})
		}
	}
	data.IconvReplacer = newSubstringReplacer(iconvRules)
	for _, e := range rawAff.Counted["OCONV"] {
		if len(e.Fields) >= 2 {
			oconvRules = append(oconvRules, replRule{From: e.Fields[0], To: e.Fields[1]})
		}
	}
	data.OconvReplacer = newSubstringReplacer(oconvRules)

	for _, e := range rawAff.Counted["PHONE"] {
		if len(e.Fields) >= 2 {
			data.PhoneRules = append(data.PhoneRules, PhoneRule{Pattern: e.Fields[0], Replacement: e.Fields[1]})
		}
	}
	for _, e := range rawAff.Counted["MAP"] {
		if len(e.Fields) >= 1 {
			data.MapGroups = append(data.MapGroups, e.Fields[0])
		}
	}

	var breakPatterns []string
	for _, e := range rawAff.Counted["BREAK"] {
		if len(e.Fields) >= 1 {
			breakPatterns = append(breakPatterns, e.Fields[0])
		}
	}
	if rawAff.CountedSeen["BREAK"] {
		data.Breaks = newBreakTable(breakPatterns)
	}

	for _, e := range rawAff.Counted["CHECKCOMPOUNDPATTERN"] {
		if len(e.Fields) < 2 {
			continue
		}
		firstEnd, firstFlag := splitFlagSuffix(e.Fields[0], mode, encoding, sink, affName, e.Line)
		secondBegin, secondFlag := splitFlagSuffix(e.Fields[1], mode, encoding, sink, affName, e.Line)
		repl := ""
		if len(e.Fields) >= 3 {
			repl = e.Fields[2]
		}
		data.CompoundChecks = append(data.CompoundChecks, CompoundCheckPattern{
			FirstWordEnd: firstEnd, FirstWordFlag: firstFlag,
			SecondWordBegin: secondBegin, SecondWordFlag: secondFlag,
			Replacement: repl,
		})
	}

	for _, e := range rawAff.Counted["COMPOUNDRULE"] {
		if len(e.Fields) == 0 {
			continue
		}
		data.CompoundRules = append(data.CompoundRules, compileCompoundRule(e.Fields[0], mode, encoding, sink, affName, e.Line))
	}

	if rawAff.CompoundSyllableMax != "" {
		if n, err := strconv.ParseInt(rawAff.CompoundSyllableMax, 10, 16); err == nil {
			data.CompoundSyll.Max = int16(n)
		}
	}
	data.CompoundSyll.Vowels = rawAff.CompoundSyllableVowels
	if rawAff.SyllableNum != nil {
		data.SyllableNum = decodeFlags(rawAff.SyllableNum.Token, modeConv(rawAff.SyllableNum.Mode), rawAff.SyllableNum.Encoding, sink, affName, rawAff.SyllableNum.Line)
	}

	for _, g := range rawAff.AffixGroups {
		kind := Prefix
		if g.Kind == "SFX" {
			kind = Suffix
		}
		headerFlag := decodeSingleFlag(g.Header.Flag, modeConv(g.Header.Mode), g.Header.Encoding, sink, affName, g.Header.Line)
		for _, el := range g.Entries {
			continuation := decodeFlagsOrAlias(el.FlagsToken, modeConv(el.Mode), el.Encoding, data.Aliases.AF, sink, affName, el.Line)
			morph := decodeMorphField(el.Morph, data.Aliases.AM, sink, affName, el.Line)
			entry, err := newAffixEntry(kind, headerFlag, g.Header.CrossProduct, el.Stripping, el.Appending, el.Condition, continuation, morph, data.Wide)
			if err != nil {
				sink.Warn(Diagnostic{Kind: ErrKindFlagSyntax, File: affName, Line: el.Line, Msg: "bad affix condition regex: " + err.Error()})
				continue
			}
			if ierr := data.Affixes.Insert(entry); ierr != nil {
				return nil, ierr
			}
		}
	}

	// dic.
	rawDic, err := dic.Parse(dicR, encoding, func(w dic.Warning) {
		sink.Warn(Diagnostic{Kind: mapDicWarnKind(w.Kind), File: dicName, Line: w.Line, Msg: w.Msg})
	})
	if err != nil {
		return nil, fatalf(ErrKindIO, dicName, 0, "%w", err)
	}

	data.Words = newWordMap(encoding, cfg.locale)
	if rawDic.DeclaredCount > cfg.maxPreallocWords {
		sink.Warn(Diagnostic{Kind: ErrKindResourceLimit, File: dicName, Line: 0,
			Msg: "declared word count exceeds the preallocation cap, ignoring the hint"})
	} else if rawDic.DeclaredCount > 0 {
		data.Words.entries = make(map[string][]*WordEntry, rawDic.DeclaredCount)
	}

	for _, e := range rawDic.Entries {
		var flags FlagSet
		if e.HasFlags {
			flags = decodeFlagsOrAlias(e.FlagsToken, mode, encoding, data.Aliases.AF, sink, dicName, e.Line)
		}
		morph := decodeMorphField(e.Morph, data.Aliases.AM, sink, dicName, e.Line)
		data.Words.Insert(e.Headword, flags, morph)
	}

	return data, nil
}

func shortOf(raw *aff.Raw, name string, sink DiagnosticSink, file string) int16 {
	v, ok := raw.Shorts[name]
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(v.Value, 10, 16)
	if err != nil {
		sink.Warn(Diagnostic{Kind: ErrKindFlagSyntax, File: file, Line: v.Line, Msg: name + " is not a valid 16-bit integer: " + v.Value})
		return 0
	}
	return int16(n)
}

func flagValueOf(raw *aff.Raw, name string, sink DiagnosticSink, file string) Flag {
	v, ok := raw.FlagValues[name]
	if !ok {
		return NoFlag
	}
	return decodeSingleFlag(v.Token, modeConv(v.Mode), v.Encoding, sink, file, v.Line)
}

// decodeMorphField resolves a morphological field list through the AM
// alias table only when it is the Hunspell AM-alias shape: a single bare
// decimal token with a non-empty AM table; otherwise the fields are
// already literal morphological tags and pass through unchanged.
func decodeMorphField(fields []string, am [][]string, sink DiagnosticSink, file string, line int) []string {
	if len(am) > 0 && len(fields) == 1 && isAllDigits(fields[0]) {
		return resolveAMAlias(fields[0], am, sink, file, line)
	}
	return fields
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// splitFlagSuffix splits a CHECKCOMPOUNDPATTERN field of the shape
// "chars/flag" into its character prefix and decoded flag.
func splitFlagSuffix(field string, mode FlagMode, enc string, sink DiagnosticSink, file string, line int) (string, Flag) {
	if i := strings.IndexByte(field, '/'); i >= 0 {
		return field[:i], decodeSingleFlag(field[i+1:], mode, enc, sink, file, line)
	}
	return field, NoFlag
}

// compileCompoundRule expands a COMPOUNDRULE pattern into its flat flag
// sequence, per spec.md §4.8: SingleChar/Utf8Bmp patterns are a plain
// flag sequence in which '?'/'*' already decode to their own literal
// values; DoubleChar/DecimalNumber patterns group flags in parens, with
// '?'/'*' appearing as bare meta-characters between groups.
func compileCompoundRule(pattern string, mode FlagMode, enc string, sink DiagnosticSink, file string, line int) CompoundRule {
	switch mode {
	case DoubleChar:
		return compileGroupedCompoundRule(pattern, sink, file, line, func(inner string) (Flag, bool) {
			if len(inner) != 2 {
				return 0, false
			}
			return Flag(inner[0])<<8 | Flag(inner[1]), true
		})
	case DecimalNumber:
		return compileGroupedCompoundRule(pattern, sink, file, line, func(inner string) (Flag, bool) {
			n, err := strconv.ParseUint(inner, 10, 32)
			if err != nil || n >= 0x10000 {
				return 0, false
			}
			return Flag(n), true
		})
	case Utf8Bmp:
		var rule CompoundRule
		for _, r := range pattern {
			if r > 0xFFFF {
				sink.Warn(Diagnostic{Kind: ErrKindNonBmpFlag, File: file, Line: line, Msg: "compound rule flag outside the BMP"})
				continue
			}
			rule = append(rule, Flag(r))
		}
		return rule
	default:
		rule := make(CompoundRule, 0, len(pattern))
		for i := 0; i < len(pattern); i++ {
			rule = append(rule, Flag(pattern[i]))
		}
		return rule
	}
}

func compileGroupedCompoundRule(pattern string, sink DiagnosticSink, file string, line int, decode func(string) (Flag, bool)) CompoundRule {
	var rule CompoundRule
	i := 0
	for i < len(pattern) {
		switch pattern[i] {
		case '?', '*':
			rule = append(rule, Flag(pattern[i]))
			i++
		case '(':
			j := strings.IndexByte(pattern[i+1:], ')')
			if j < 0 {
				sink.Warn(Diagnostic{Kind: ErrKindFlagSyntax, File: file, Line: line, Msg: "unterminated ( in COMPOUNDRULE"})
				return rule
			}
			inner := pattern[i+1 : i+1+j]
			if f, ok := decode(inner); ok {
				rule = append(rule, f)
			} else {
				sink.Warn(Diagnostic{Kind: ErrKindFlagSyntax, File: file, Line: line, Msg: "malformed COMPOUNDRULE group: " + inner})
			}
			i = i + 1 + j + 1
		default:
			sink.Warn(Diagnostic{Kind: ErrKindFlagSyntax, File: file, Line: line, Msg: "unexpected character in COMPOUNDRULE: " + string(pattern[i])})
			i++
		}
	}
	return rule
}

func mapAffWarnKind(k aff.WarnKind) ErrorKind {
	switch k {
	case aff.WarnZeroCount:
		return ErrKindZeroCount
	case aff.WarnExtraEntry:
		return ErrKindExtraEntry
	case aff.WarnAffixHeader:
		return ErrKindAffixHeader
	case aff.WarnMissingFlag:
		return ErrKindMissingFlag
	case aff.WarnUnknownFlagType:
		return ErrKindUnknownFlagType
	case aff.WarnEncodingSetTwice:
		return ErrKindEncodingSetTwice
	case aff.WarnInvalidUTF8:
		return ErrKindInvalidUtf8
	default:
		return ErrKindFlagSyntax
	}
}

func mapDicWarnKind(k dic.WarnKind) ErrorKind {
	switch k {
	case dic.WarnBadCount:
		return ErrKindZeroCount
	case dic.WarnEmptyHeadword:
		return ErrKindFlagSyntax
	case dic.WarnInvalidUTF8:
		return ErrKindInvalidUtf8
	default:
		return ErrKindFlagSyntax
	}
}
