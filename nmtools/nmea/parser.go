package nmea

import "strings"

// Sentence is a decoded NMEA 0183 sentence.
type Sentence interface {
	// Type returns the sentence tag without the start marker, e.g. GPRMC.
	Type() string
}

// Parser validates and decodes one type of sentence.
type Parser interface {
	// Validate reports whether the sentence is well formed. It never fails.
	Validate(sentence string) bool
	// Decode decodes the sentence, returning an error wrapping
	// ErrMissingInput, ErrMalformedField or ErrChecksumMismatch.
	Decode(sentence string) (Sentence, error)
}

// Parsers maps sentence tags to the parser decoding them.
var Parsers = map[string]Parser{
	TypeRMC: RMCParser{},
}

// Lookup returns the parser registered for the tag of the sentence.
func Lookup(sentence string) (Parser, bool) {
	tag := sentence
	if i := strings.IndexByte(sentence, fieldSeparator); i != -1 {
		tag = sentence[:i]
	}
	tag = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(tag), string(startMarker)))

	p, ok := Parsers[tag]
	return p, ok
}
