package hytab

import (
	"errors"
	"fmt"
)

// A SuffixTable maps a word's final letter to a chain of packed suffix
// patterns. Each packed entry is a header byte followed by the suffix
// characters in reverse order; a zero byte ends a chain. The header's
// low nibble is the number of suffix characters (1..15), the top three
// bits are the hyphen-allowed, skip-vowel-check and continue flags.
type SuffixTable struct {
	stream  []byte
	offsets [26]uint16 // 0 = no chain for that letter
}

const (
	suffixHyphen   = 0x80
	suffixNoVowel  = 0x40
	suffixContinue = 0x20
	suffixLenMask  = 0x0f
)

// ErrBadRule reports a suffix rule that cannot be compiled.
var ErrBadRule = errors.New("hytab: bad suffix rule")

// A SuffixRule is one suffix before compilation, spelled forward.
type SuffixRule struct {
	Suffix       string
	Hyphen       bool // a break may go right before the suffix
	NoVowelCheck bool // do not require a vowel in the remaining prefix
	Continue     bool // strip the suffix and rescan the prefix
}

// A SuffixPattern is one decoded chain entry. Reversed aliases the
// table's stream and must not be modified.
type SuffixPattern struct {
	Reversed     []byte
	Hyphen       bool
	NoVowelCheck bool
	Continue     bool
}

// Compile packs rules into a SuffixTable. Rules are grouped by final
// letter; within one letter the argument order is kept, and matching
// walks a chain front to back, so longer suffixes should precede their
// own tails ("ment" before "ent").
func Compile(rules []SuffixRule) (*SuffixTable, error) {
	byLetter := make([][]SuffixRule, 26)
	for _, r := range rules {
		n := len(r.Suffix)
		if n == 0 || n > suffixLenMask {
			return nil, fmt.Errorf("%w: %q: length must be 1..%d", ErrBadRule, r.Suffix, suffixLenMask)
		}
		for i := 0; i < n; i++ {
			if c := lower(r.Suffix[i]); c < 'a' || c > 'z' {
				return nil, fmt.Errorf("%w: %q: non-letter character", ErrBadRule, r.Suffix)
			}
		}
		last := lower(r.Suffix[n-1]) - 'a'
		byLetter[last] = append(byLetter[last], r)
	}
	t := &SuffixTable{stream: []byte{0}}
	for letter, chain := range byLetter {
		if len(chain) == 0 {
			continue
		}
		t.offsets[letter] = uint16(len(t.stream))
		for _, r := range chain {
			h := byte(len(r.Suffix))
			if r.Hyphen {
				h |= suffixHyphen
			}
			if r.NoVowelCheck {
				h |= suffixNoVowel
			}
			if r.Continue {
				h |= suffixContinue
			}
			t.stream = append(t.stream, h)
			for i := len(r.Suffix) - 1; i >= 0; i-- {
				t.stream = append(t.stream, lower(r.Suffix[i]))
			}
		}
		t.stream = append(t.stream, 0)
	}
	tracer().Debugf("compiled %d suffix rules into %d bytes", len(rules), len(t.stream))
	return t, nil
}

// Chain returns an iterator over the patterns whose final letter is c.
// A letter without patterns yields an empty iterator.
func (t *SuffixTable) Chain(c byte) SuffixIter {
	if t == nil {
		return SuffixIter{}
	}
	c = lower(c)
	if c < 'a' || c > 'z' {
		return SuffixIter{}
	}
	off := t.offsets[c-'a']
	if off == 0 {
		return SuffixIter{}
	}
	return SuffixIter{stream: t.stream, pos: int(off)}
}

// A SuffixIter walks one pattern chain.
type SuffixIter struct {
	stream []byte
	pos    int
}

// Next decodes the next pattern of the chain.
func (it *SuffixIter) Next() (SuffixPattern, bool) {
	if it.stream == nil || it.pos <= 0 || it.pos >= len(it.stream) {
		return SuffixPattern{}, false
	}
	h := it.stream[it.pos]
	if h == 0 {
		return SuffixPattern{}, false
	}
	n := int(h & suffixLenMask)
	start := it.pos + 1
	end := start + n
	if end > len(it.stream) {
		return SuffixPattern{}, false
	}
	it.pos = end
	return SuffixPattern{
		Reversed:     it.stream[start:end:end],
		Hyphen:       h&suffixHyphen != 0,
		NoVowelCheck: h&suffixNoVowel != 0,
		Continue:     h&suffixContinue != 0,
	}, true
}

// English is the built-in suffix table for English text.
var English = mustCompile(englishRules)

func mustCompile(rules []SuffixRule) *SuffixTable {
	t, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return t
}

// The built-in rules lean on the common derivational endings. The bare
// "s" entry never marks anything itself (a break before the last
// letter is always rejected); it is there to strip plurals and rescan.
var englishRules = []SuffixRule{
	{Suffix: "ed", Hyphen: true, Continue: true},
	{Suffix: "able", Hyphen: true},
	{Suffix: "ible", Hyphen: true},
	{Suffix: "ance", Hyphen: true},
	{Suffix: "ence", Hyphen: true},
	{Suffix: "ble", Hyphen: true},
	{Suffix: "ate", Hyphen: true},
	{Suffix: "ute", Hyphen: true},
	{Suffix: "ite", Hyphen: true},
	{Suffix: "ive", Hyphen: true},
	{Suffix: "ize", Hyphen: true},
	{Suffix: "age", Hyphen: true},
	{Suffix: "ure", Hyphen: true},
	{Suffix: "ing", Hyphen: true, Continue: true},
	{Suffix: "ish", Hyphen: true},
	{Suffix: "ful", Hyphen: true},
	{Suffix: "al", Hyphen: true},
	{Suffix: "ism", Hyphen: true},
	{Suffix: "tion", Hyphen: true, Continue: true},
	{Suffix: "sion", Hyphen: true, Continue: true},
	{Suffix: "ion", Hyphen: true},
	{Suffix: "ain", Hyphen: true},
	{Suffix: "en", Hyphen: true},
	{Suffix: "er", Hyphen: true, Continue: true},
	{Suffix: "or", Hyphen: true},
	{Suffix: "ness", Hyphen: true, Continue: true},
	{Suffix: "less", Hyphen: true, Continue: true},
	{Suffix: "ies", Hyphen: true},
	{Suffix: "ous", Hyphen: true},
	{Suffix: "s", Hyphen: true, NoVowelCheck: true, Continue: true},
	{Suffix: "ment", Hyphen: true, Continue: true},
	{Suffix: "ent", Hyphen: true},
	{Suffix: "ant", Hyphen: true},
	{Suffix: "est", Hyphen: true},
	{Suffix: "ist", Hyphen: true},
	{Suffix: "ly", Hyphen: true, Continue: true},
	{Suffix: "ity", Hyphen: true},
	{Suffix: "ty", Hyphen: true},
	{Suffix: "fy", Hyphen: true},
}
