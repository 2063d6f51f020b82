package runoff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/derekparker/trie"

	"github.com/npillmayer/runoff/hytab"
)

// Shortest alphabetic core that hyphenation will look at.
const minCoreLen = 5

// A Hyphenator finds legal break points inside words. Lookup order:
// the exception dictionary first, then morphological suffix rules,
// then statistical digram scoring over the remaining stem. All rule
// violations degrade silently to "no break here".
type Hyphenator struct {
	suffixes *hytab.SuffixTable
	except   *trie.Trie
}

// NewHyphenator returns a hyphenator with the built-in English suffix
// table and an empty exception dictionary.
func NewHyphenator() *Hyphenator {
	return &Hyphenator{
		suffixes: hytab.English,
		except:   trie.New(),
	}
}

// SetSuffixes replaces the suffix table. A nil table disables suffix
// analysis.
func (h *Hyphenator) SetSuffixes(t *hytab.SuffixTable) { h.suffixes = t }

// ErrBadException reports an exception entry that cannot be stored.
var ErrBadException = errors.New("runoff: bad exception word")

// AddException stores a word with its break points spelled out, as in
// "hy-phen-ate". Later hyphenation of that word uses exactly these
// points and skips rule analysis.
func (h *Hyphenator) AddException(spelled string) error {
	var letters []byte
	var breaks []int
	for _, r := range strings.ToLower(spelled) {
		switch {
		case r >= 'a' && r <= 'z':
			letters = append(letters, byte(r))
		case r == '-':
			if len(letters) == 0 {
				return fmt.Errorf("%w: %q", ErrBadException, spelled)
			}
			breaks = append(breaks, len(letters))
		default:
			return fmt.Errorf("%w: %q", ErrBadException, spelled)
		}
	}
	if len(letters) == 0 {
		return fmt.Errorf("%w: %q", ErrBadException, spelled)
	}
	h.except.Add(string(letters), breaks)
	return nil
}

// LoadExceptions reads whitespace-separated exception words from r,
// "#" starting a comment that runs to end of line. It returns the
// number of words stored.
func (h *Hyphenator) LoadExceptions(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, field := range strings.Fields(text) {
			if err := h.AddException(field); err != nil {
				return count, fmt.Errorf("line %d: %w", lineno, err)
			}
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	tracer().Infof("loaded %d hyphenation exceptions", count)
	return count, nil
}

// Hyphenate marks break candidates on w in place. It never errors:
// any rule violation leaves the word with whatever marks it already
// has, usually none. The threshold gates the digram stage; suffix
// rules and exceptions ignore it.
func (h *Hyphenator) Hyphenate(w *Word, threshold int) {
	start, end, ok := hyphenCore(w)
	if !ok {
		return
	}
	if h.applyException(w, start, end, true) {
		return
	}
	end, hit := h.suffixScan(w, start, end)
	if hit {
		return
	}
	h.digramScan(w, start, end, threshold)
}

// hyphenCore finds the alphabetic core [start, end] of the word.
// Leading punctuation is skipped; trailing punctuation must run to
// the true end of the word; a short or broken word yields no core.
func hyphenCore(w *Word) (start, end int, ok bool) {
	n := len(w.units)
	i := 0
	for i < n && !w.units[i].Alpha() {
		i++
	}
	if i >= n {
		return 0, 0, false
	}
	start = i
	for i < n && w.units[i].Alpha() {
		i++
	}
	end = i - 1
	for ; i < n; i++ {
		if w.units[i].Alpha() {
			return 0, 0, false
		}
	}
	if end-start+1 < minCoreLen {
		return 0, 0, false
	}
	return start, end, true
}

// applyException looks the core up in the exception dictionary and,
// on a hit, transfers its stored break points. With plural set, a
// core ending in "s" also matches its dictionary entry without the
// trailing letter.
func (h *Hyphenator) applyException(w *Word, start, end int, plural bool) bool {
	if h.except == nil || end < start {
		return false
	}
	var sb strings.Builder
	for i := start; i <= end; i++ {
		sb.WriteByte(w.units[i].Letter())
	}
	core := sb.String()
	node, found := h.except.Find(core)
	if !found && plural && core[len(core)-1] == 's' {
		node, found = h.except.Find(core[:len(core)-1])
	}
	if !found {
		return false
	}
	breaks, _ := node.Meta().([]int)
	for _, b := range breaks {
		p := start + b
		if p > start && p < end {
			w.units[p].Mark = MarkException
		}
	}
	tracer().Debugf("exception word %q, %d break points", core, len(breaks))
	return true
}

// suffixScan strips recognized suffixes off the core, marking the
// boundary before each one that allows a break. It returns the core
// end left after stripping, which the digram stage scans next, and
// whether a stripped stem turned out to be an exception word, which
// ends the analysis.
func (h *Hyphenator) suffixScan(w *Word, start, end int) (int, bool) {
	if h.suffixes == nil {
		return end, false
	}
	for end-start+1 >= 3 {
		pat, m := h.matchChain(w, start, end)
		if m < 0 {
			break
		}
		if m > start && m < end && (pat.NoVowelCheck || vowelBefore(w, start, m)) {
			w.units[m].Mark = MarkSuffix
			tracer().Debugf("suffix break before unit %d", m)
		}
		end = m - 1
		if !pat.Continue {
			break
		}
		if h.applyException(w, start, end, false) {
			return end, true
		}
	}
	return end, false
}

// matchChain walks the suffix chain for the core's final letter and
// returns the first matching pattern that allows a break, along with
// the index of the suffix's first letter. Matches without the break
// flag are skipped. No match yields -1.
func (h *Hyphenator) matchChain(w *Word, start, end int) (hytab.SuffixPattern, int) {
	it := h.suffixes.Chain(w.units[end].Letter())
	for {
		pat, ok := it.Next()
		if !ok {
			return hytab.SuffixPattern{}, -1
		}
		m := matchSuffix(w, start, end, pat.Reversed)
		if m < 0 || !pat.Hyphen {
			continue
		}
		return pat, m
	}
}

// matchSuffix compares a reversed pattern against the core tail
// ending at end. It returns the index of the suffix's first letter,
// or -1.
func matchSuffix(w *Word, start, end int, reversed []byte) int {
	if len(reversed) > end-start+1 {
		return -1
	}
	for i, c := range reversed {
		if w.units[end-i].Letter() != c {
			return -1
		}
	}
	return end - len(reversed) + 1
}

// vowelBefore reports whether a vowel occurs scanning backward from
// just before position m, before any non-letter turns up.
func vowelBefore(w *Word, start, m int) bool {
	for j := m - 1; j >= start; j-- {
		if !w.units[j].Alpha() {
			return false
		}
		if w.units[j].Vowel() {
			return true
		}
	}
	return false
}

// digramScan statistically scores the window between the stem's last
// vowel group and the consonant before it, marks the best scoring
// position if it reaches the threshold, and recurses on the prefix
// ending just before the mark.
func (h *Hyphenator) digramScan(w *Word, start, end, threshold int) {
	for {
		v := end
		for v >= start && !w.units[v].Vowel() {
			v--
		}
		if v < start {
			return
		}
		ws := v - 1
		for ws >= start && w.units[ws].Vowel() {
			ws--
		}
		if ws < start {
			return
		}
		maxScore, maxPos := -1, -1
		for p, hi := max(ws, start+1), min(v, end-1); p <= hi; p++ {
			if score := scorePosition(w, p); score > maxScore {
				maxScore, maxPos = score, p
			}
		}
		if maxPos < 0 || maxScore < threshold {
			return
		}
		w.units[maxPos].Mark = MarkDigram
		tracer().Debugf("digram break before unit %d, score %d", maxPos, maxScore)
		end = maxPos - 1
	}
}

// scorePosition computes the best of the positional context scores
// at p: the opening or cluster tables against the preceding letter,
// and the nucleus and coda tables against the following one.
func scorePosition(w *Word, p int) int {
	cur := w.units[p].Letter()
	var score int
	if p == 0 || !w.units[p-1].Alpha() {
		score = hytab.InitialCV.Weight(cur, 'a')
	} else {
		prev := w.units[p-1].Letter()
		if p-2 >= 0 && w.units[p-2].Alpha() {
			score = hytab.CCV.Weight(prev, cur)
		} else {
			score = hytab.InitialCCV.Weight(prev, cur)
		}
	}
	next := w.units[p+1].Letter()
	score = max(score, hytab.CVC.Weight(cur, next))
	score = max(score, hytab.VCC.Weight(cur, next))
	return score
}
