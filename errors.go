package nuspell

import "fmt"

// ErrorKind identifies one of the error conditions a load can hit. Kinds
// marked fatal in their doc comment abort Load; the rest are warnings
// routed to a DiagnosticSink and do not stop parsing.
type ErrorKind int

const (
	// ErrKindIO is fatal: a stream read failed.
	ErrKindIO ErrorKind = iota
	// ErrKindInvalidUtf8 is a warning: UTF-8 was declared but a line is
	// ill-formed UTF-8.
	ErrKindInvalidUtf8
	// ErrKindFlagSyntax is a warning: a flag token could not be decoded.
	ErrKindFlagSyntax
	// ErrKindMissingFlag is a warning: a command expected a flag and none
	// was present.
	ErrKindMissingFlag
	// ErrKindAliasIndex is a warning: an AF/AM index was out of range.
	ErrKindAliasIndex
	// ErrKindUnknownFlagType is a warning: FLAG named something other
	// than LONG/NUM/UTF-8.
	ErrKindUnknownFlagType
	// ErrKindZeroCount is a warning: a counted family had no header count.
	ErrKindZeroCount
	// ErrKindExtraEntry is a warning: a counted family exceeded its
	// declared count.
	ErrKindExtraEntry
	// ErrKindAffixHeader is a warning: a PFX/SFX header was missing its
	// cross-product marker or count.
	ErrKindAffixHeader
	// ErrKindAffixCrossProductConflict is fatal: the same flag was used
	// with conflicting cross-product values.
	ErrKindAffixCrossProductConflict
	// ErrKindNonBmpFlag is a warning: a UTF-8 flag fell outside the BMP.
	ErrKindNonBmpFlag
	// ErrKindEncodingSetTwice is a warning: a scalar command was set more
	// than once.
	ErrKindEncodingSetTwice
	// ErrKindResourceLimit is a warning: an ambient safety bound (not part
	// of the Hunspell grammar) was exceeded. It is emitted when the dic
	// file's declared word count is above the preallocation cap; the
	// pre-sizing hint is then skipped and the words are still loaded.
	ErrKindResourceLimit
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindIO:
		return "Io"
	case ErrKindInvalidUtf8:
		return "InvalidUtf8"
	case ErrKindFlagSyntax:
		return "FlagSyntax"
	case ErrKindMissingFlag:
		return "MissingFlag"
	case ErrKindAliasIndex:
		return "AliasIndex"
	case ErrKindUnknownFlagType:
		return "UnknownFlagType"
	case ErrKindZeroCount:
		return "ZeroCount"
	case ErrKindExtraEntry:
		return "ExtraEntry"
	case ErrKindAffixHeader:
		return "AffixHeader"
	case ErrKindAffixCrossProductConflict:
		return "AffixCrossProductConflict"
	case ErrKindNonBmpFlag:
		return "NonBmpFlag"
	case ErrKindEncodingSetTwice:
		return "EncodingSetTwice"
	case ErrKindResourceLimit:
		return "ResourceLimit"
	}
	return "Unknown"
}

// Fatal reports whether errors of this kind abort Load.
func (k ErrorKind) Fatal() bool {
	switch k {
	case ErrKindIO, ErrKindAffixCrossProductConflict:
		return true
	}
	return false
}

// LoaderError is returned by Load when a fatal condition unwinds parsing.
type LoaderError struct {
	Kind ErrorKind
	File string
	Line int
	Err  error
}

func (e *LoaderError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("nuspell: %s:%d: %s: %v", e.File, e.Line, e.Kind, e.Err)
	}
	return fmt.Sprintf("nuspell: %s: %s: %v", e.File, e.Kind, e.Err)
}

func (e *LoaderError) Unwrap() error { return e.Err }

func fatalf(kind ErrorKind, file string, line int, format string, args ...any) *LoaderError {
	return &LoaderError{Kind: kind, File: file, Line: line, Err: fmt.Errorf(format, args...)}
}
