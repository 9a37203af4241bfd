// Package words supplies the word pools platforms are built from: a static
// corpus bucketed by difficulty, a remote JSON generator and plain word
// list files, plus wrappers that cache results and recover from failures.
package words

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/typejump/internal/config"
)

var commonWords = []string{
	"THE", "ABOUT", "WHICH", "THEIR", "WOULD", "THERE", "THESE", "STORY", "PEOPLE", "WATER", "FIRST", "SOUND",
	"PLACE", "COULD", "FOLLOW", "ANOTHER", "THROUGH", "SENTENCE", "BEFORE", "LITTLE", "DIFFER", "WRITING",
	"NUMBER", "BETWEEN", "PICTURE", "THOUGHT", "GOVERNMENT", "IMPORTANT", "SOMETIMES", "MOUNTAIN", "CHILDREN",
	"FRIEND", "SCHOOL", "PROBLEM", "ANSWER", "COUNTRY", "BECAUSE", "AGAINST", "THINGS", "SYSTEM", "HAPPEN",
	"BELIEVE", "TOGETHER", "WITHOUT", "THOUSAND", "LANGUAGE", "SCIENCE", "EXPERIENCE", "KNOWLEDGE", "HISTORY",
}

var codeKeywords = []string{
	"FUNCTION", "RETURN", "CONST", "EXPORT", "IMPORT", "INTERFACE", "PROMISE", "ASYNC", "AWAIT", "COMPONENT",
	"EFFECT", "REDUCE", "FILTER", "STRING", "BOOLEAN", "OBJECT", "PACKAGE", "MODULE", "CONTEXT", "RENDER",
	"DEBUG", "WINDOW", "NAVIGATOR", "POINTER", "TEMPLATE", "CONSTRUCTOR", "PROTOTYPE", "INSTANCE", "ABSTRACT",
	"POLYMORPHISM", "ENCAPSULATION", "INHERITANCE", "CALLBACK", "RECURSION", "MUTATION", "COMPUTED", "DEBOUNCE",
}

// Finger drills: short letter runs along the keyboard rows.
var junkStrings = []string{
	"XTY", "MQA", "WSE", "PPL", "KJB", "VXC", "RTY", "FGH", "ZXC", "QWE", "JKL", "MNB", "OIP", "ASD", "DFG",
	"CVB", "BNM", "POI", "UYH", "TGB", "RFV", "EDC", "WSX", "QAZ", "XDR", "CFT", "VGY", "BHU", "NJM", "MKD",
}

var cyberWinter = []string{
	"GLACIER", "PROTOCOL", "BLIZZARD", "FIREWALL", "CRYSTAL", "SYNTH", "INFY", "CLOUD", "HYPER-SPEED",
	"CRYO-ARRAY", "QUANTUM-HEX", "BIO-INTERFACE", "ATMOSPHERE", "ENCRYPTION", "SYNCHRONIZE", "FROSTBYTE",
	"NEON-GRID", "ZERO-GRAVITY", "VOID-PULSE", "DATA-STREAM", "NORDIC-CELL", "AURORA-CORE", "PERMAFROST",
}

const (
	beginnerMaxLen     = 4
	intermediateMaxLen = 7
	minBeginnerWords   = 10
	beginnerFallbackN  = 50
)

// masterPool is every corpus list plus plural common words and a second
// copy of the code keywords, which weights them higher in the draw.
var masterPool = func() []string {
	var pool []string
	pool = append(pool, commonWords...)
	pool = append(pool, codeKeywords...)
	pool = append(pool, junkStrings...)
	pool = append(pool, cyberWinter...)
	for _, w := range commonWords {
		pool = append(pool, w+"S")
	}
	pool = append(pool, codeKeywords...)
	return pool
}()

// InTier reports whether a word's length belongs to a difficulty:
// Beginner up to 4 characters, Intermediate 5 to 7, Expert 8 and more.
func InTier(word string, d config.Difficulty) bool {
	n := utf8.RuneCountInString(word)
	switch d {
	case config.Beginner:
		return n <= beginnerMaxLen
	case config.Intermediate:
		return n > beginnerMaxLen && n <= intermediateMaxLen
	default:
		return n > intermediateMaxLen
	}
}

// Bucket filters words down to one difficulty tier, keeping order.
func Bucket(words []string, d config.Difficulty) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if InTier(w, d) {
			out = append(out, w)
		}
	}
	return out
}

// Corpus returns the built-in pool for a difficulty. A Beginner bucket too
// small to play is replaced by the head of the master pool.
func Corpus(d config.Difficulty) []string {
	bucket := Bucket(masterPool, d)
	if d == config.Beginner && len(bucket) < minBeginnerWords {
		n := min(beginnerFallbackN, len(masterPool))
		return append([]string(nil), masterPool[:n]...)
	}
	return bucket
}

// Normalize trims and uppercases words, dropping empty entries and any word
// holding whitespace or unprintable runes. Words must be typeable one key at
// a time.
func Normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || !typeable(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func typeable(w string) bool {
	for _, r := range w {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
