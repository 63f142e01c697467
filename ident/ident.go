// Package ident converts the raw names used in a grammar, such as
// "FPFastMathMode" or "RayTracingKHR", into identifiers in a particular
// casing style.
package ident

import (
	"io"
	"sort"
	"strings"
	"unicode"
)

// Style is a casing convention for rendered identifiers.
type Style int

const (
	// Snake is lower case words joined by underscores: "ray_tracing_khr".
	Snake Style = iota
	// Title is capitalized words joined directly: "RayTracingKHR".
	Title
	// Screaming is upper case words joined by underscores: "RAY_TRACING_KHR".
	Screaming
)

func (s Style) String() string {
	switch s {
	case Snake:
		return "snake"
	case Title:
		return "title"
	case Screaming:
		return "screaming"
	default:
		return "invalid"
	}
}

// DefaultTags are the vendor tags recognized when a Renderer is created
// without any.
var DefaultTags = []string{"AMD", "EXT", "GOOGLE", "INTEL", "KHR", "NV"}

// Renderer renders tokens in a given Style, keeping a trailing vendor tag
// together as a single word.
//
// A Renderer caches the word segmentation of each token it sees, so it must
// not be used from more than one goroutine at a time.
type Renderer struct {
	tags  []string
	cache map[string][]word
}

type word struct {
	text string
	tag  bool
}

// New returns a renderer that recognizes the given vendor tags, or
// DefaultTags if none are given.
func New(tags ...string) *Renderer {
	if len(tags) == 0 {
		tags = DefaultTags
	}
	r := &Renderer{
		tags:  make([]string, 0, len(tags)),
		cache: make(map[string][]word),
	}
	for _, tag := range tags {
		if tag = strings.ToUpper(strings.TrimSpace(tag)); tag != "" {
			r.tags = append(r.tags, tag)
		}
	}

	// Longer tags are tried first so that "NVX" is not mistaken for "NV"
	// followed by a stray "X".
	sort.SliceStable(r.tags, func(i, j int) bool {
		return len(r.tags[i]) > len(r.tags[j])
	})
	return r
}

// Tags returns the vendor tags the renderer recognizes, longest first.
func (r *Renderer) Tags() []string {
	return append([]string(nil), r.tags...)
}

// Render writes token to w in the given style. It fails only if w does.
func (r *Renderer) Render(w io.Writer, style Style, token string) error {
	words := r.split(token)
	var b strings.Builder
	for i, wd := range words {
		if i > 0 && style != Title {
			b.WriteByte('_')
		}
		switch style {
		case Snake:
			b.WriteString(strings.ToLower(wd.text))
		case Screaming:
			b.WriteString(strings.ToUpper(wd.text))
		default:
			if wd.tag {
				b.WriteString(wd.text)
				continue
			}
			b.WriteString(titleWord(wd.text))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Format is like Render but returns the result.
func (r *Renderer) Format(style Style, token string) string {
	var b strings.Builder
	_ = r.Render(&b, style, token) // strings.Builder never fails
	return b.String()
}

// Words returns the words token is split into before casing.
func (r *Renderer) Words(token string) []string {
	words := r.split(token)
	ret := make([]string, len(words))
	for i, wd := range words {
		ret[i] = wd.text
	}
	return ret
}

func (r *Renderer) split(token string) []word {
	if words, ok := r.cache[token]; ok {
		return words
	}

	rest := token
	var tag string
	for _, t := range r.tags {
		if len(rest) > len(t) && strings.HasSuffix(rest, t) && tagBoundary(rest[:len(rest)-len(t)]) {
			tag = t
			rest = rest[:len(rest)-len(t)]
			break
		}
	}

	var words []word
	for _, s := range splitWords(rest) {
		words = append(words, word{text: s})
	}
	if tag != "" {
		words = append(words, word{text: tag, tag: true})
	}
	r.cache[token] = words
	return words
}

// splitWords breaks s at separators and at case transitions: lower case or
// digit to upper case, and the last letter of an upper case run that is
// followed by lower case ("FPFast" is "FP" then "Fast"). Digits stay with
// the word they follow.
func splitWords(s string) []string {
	runes := []rune(s)
	var ret []string
	start := 0
	flush := func(end int) {
		if end > start {
			ret = append(ret, string(runes[start:end]))
		}
	}
	for i, r := range runes {
		if isSeparator(r) {
			flush(i)
			start = i + 1
			continue
		}
		if i == start || !unicode.IsUpper(r) {
			continue
		}
		prev := runes[i-1]
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		switch {
		case unicode.IsLower(prev):
			flush(i)
			start = i
		case unicode.IsDigit(prev) && nextLower:
			flush(i)
			start = i
		case unicode.IsUpper(prev) && nextLower:
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return ret
}

// tagBoundary reports whether a vendor tag may start right after prefix. A
// single upper case letter before the tag means the tag is the tail of a
// longer word, as with "EXT" in "RayQueryNEXT".
func tagBoundary(prefix string) bool {
	upper := 0
	for _, r := range prefix {
		if unicode.IsUpper(r) {
			upper++
		} else {
			upper = 0
		}
	}
	return upper != 1
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

func titleWord(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
