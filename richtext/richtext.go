// Package richtext parses inline text markup into styled runs.
//
// Supported tags:
//
//	<color="#ff0000">red</color>   alias <c=...>
//	<size=20>big</size>            alias <s=...>
//	<font="mono">code</font>       alias <f=...>
//	<b>bold</b> <i>italic</i> <u>underline</u>  (also bold, italic, underline)
//	<span color="#0f0" size=12 bold>...</span>
//
// Malformed markup never fails: Parse falls back to the literal string as one run.
package richtext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/agiangrant/facet/geom"
	"github.com/agiangrant/facet/internal/trace"
	"github.com/agiangrant/facet/style"
	"github.com/agiangrant/facet/text"
)

var logger = trace.New("richtext")

// Style is the resolved style of one run.
type Style struct {
	Color     style.Color
	Size      float32
	Family    string
	Bold      bool
	Italic    bool
	Underline bool
}

// Font returns the font spec a measurer needs for this style.
func (s Style) Font() text.FontSpec {
	return text.FontSpec{Family: s.Family, Size: s.Size, Bold: s.Bold, Italic: s.Italic}
}

// Run is a span of text with one style.
type Run struct {
	Text  string
	Style Style
}

// Text is parsed rich text.
type Text struct {
	Runs  []Run
	Plain bool
}

// HasMarkup is a cheap check for anything that could be a tag.
func HasMarkup(s string) bool {
	return strings.ContainsRune(s, '<') && strings.ContainsRune(s, '>')
}

// Parse splits s into runs starting from base. Input without markup, or with markup
// that does not parse, yields a single plain run holding s unchanged.
func Parse(s string, base Style) Text {
	if !HasMarkup(s) {
		return Plain(s, base)
	}
	runs, err := parse(s, base)
	if err != nil {
		logger.Debugf("%v; rendering %q literally", err, s)
		return Plain(s, base)
	}
	return Text{Runs: runs}
}

// Plain wraps s as one run.
func Plain(s string, st Style) Text {
	return Text{Runs: []Run{{Text: s, Style: st}}, Plain: true}
}

// String returns the text without markup.
func (t Text) String() string {
	if len(t.Runs) == 1 {
		return t.Runs[0].Text
	}
	var b strings.Builder
	for _, r := range t.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Measure lays runs out on one baseline: widths add up, the tallest run sets the height.
// Runs containing newlines are measured by the measurer as a block.
func (t Text) Measure(m text.Measurer) geom.Size {
	var out geom.Size
	for _, r := range t.Runs {
		sz := m.Measure(r.Text, r.Style.Font())
		out.W += sz.W
		out.H = max(out.H, sz.H)
	}
	return out
}

var errUnexpectedEnd = errors.New("unexpected end of markup")

type tagKind int

const (
	tagColor tagKind = iota
	tagSize
	tagFont
	tagBold
	tagItalic
	tagUnderline
	tagSpan
)

var tagNames = map[string]tagKind{
	"color": tagColor, "c": tagColor,
	"size": tagSize, "s": tagSize,
	"font": tagFont, "f": tagFont,
	"bold": tagBold, "b": tagBold,
	"italic": tagItalic, "i": tagItalic,
	"underline": tagUnderline, "u": tagUnderline,
	"span": tagSpan,
}

type frame struct {
	kind  tagKind
	style Style
}

type parser struct {
	src   string
	pos   int
	stack []frame
}

func parse(src string, base Style) ([]Run, error) {
	p := &parser{src: src, stack: []frame{{kind: -1, style: base}}}
	var runs []Run
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			runs = append(runs, Run{Text: buf.String(), Style: p.top()})
			buf.Reset()
		}
	}

	for p.pos < len(p.src) {
		if p.src[p.pos] != '<' {
			n := strings.IndexByte(p.src[p.pos:], '<')
			if n < 0 {
				n = len(p.src) - p.pos
			}
			buf.WriteString(p.src[p.pos : p.pos+n])
			p.pos += n
			continue
		}
		flush()
		if err := p.tag(); err != nil {
			return nil, fmt.Errorf("richtext: at %d: %w", p.pos, err)
		}
	}
	flush()
	return runs, nil
}

func (p *parser) top() Style {
	return p.stack[len(p.stack)-1].style
}

func (p *parser) tag() error {
	p.pos++ // '<'
	closing := p.peek() == '/'
	if closing {
		p.pos++
	}
	name := p.ident()
	kind, ok := tagNames[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown tag %q", name)
	}

	if closing {
		p.skipSpace()
		if err := p.expect('>'); err != nil {
			return err
		}
		if len(p.stack) == 1 || p.stack[len(p.stack)-1].kind != kind {
			return fmt.Errorf("unbalanced </%s>", name)
		}
		p.stack = p.stack[:len(p.stack)-1]
		return nil
	}

	attrs := map[string]string{}
	p.skipSpace()
	if p.peek() == '=' {
		p.pos++
		v, err := p.value()
		if err != nil {
			return err
		}
		attrs[canonical(kind)] = v
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '>':
			p.pos++
			st := p.top()
			apply(kind, attrs, &st)
			p.stack = append(p.stack, frame{kind: kind, style: st})
			return nil
		case 0:
			return errUnexpectedEnd
		}
		key := p.ident()
		if key == "" {
			return fmt.Errorf("unexpected %q in tag", p.peek())
		}
		p.skipSpace()
		if p.peek() != '=' {
			attrs[key] = "true"
			continue
		}
		p.pos++
		p.skipSpace()
		v, err := p.value()
		if err != nil {
			return err
		}
		attrs[key] = v
	}
}

func canonical(kind tagKind) string {
	switch kind {
	case tagColor:
		return "color"
	case tagSize:
		return "size"
	case tagFont:
		return "font"
	}
	return "value"
}

func apply(kind tagKind, attrs map[string]string, st *Style) {
	switch kind {
	case tagBold:
		st.Bold = true
		return
	case tagItalic:
		st.Italic = true
		return
	case tagUnderline:
		st.Underline = true
		return
	}
	if v, ok := attrs["color"]; ok && (kind == tagColor || kind == tagSpan) {
		if c, err := style.ParseHex(v); err == nil {
			st.Color = c
		}
	}
	if v, ok := attrs["size"]; ok && (kind == tagSize || kind == tagSpan) {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			st.Size = float32(f)
		}
	}
	if v, ok := attrs["font"]; ok && (kind == tagFont || kind == tagSpan) {
		st.Family = v
	}
	if kind == tagSpan {
		st.Bold = st.Bold || has(attrs, "bold")
		st.Italic = st.Italic || has(attrs, "italic")
		st.Underline = st.Underline || has(attrs, "underline")
	}
}

func has(attrs map[string]string, key string) bool {
	_, ok := attrs[key]
	return ok
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expect(c byte) error {
	if p.peek() != c {
		if p.pos >= len(p.src) {
			return errUnexpectedEnd
		}
		return fmt.Errorf("expected %q, found %q", c, p.peek())
	}
	p.pos++
	return nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '_' || c == '-' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *parser) value() (string, error) {
	if q := p.peek(); q == '"' || q == '\'' {
		end := strings.IndexByte(p.src[p.pos+1:], q)
		if end < 0 {
			return "", errors.New("unterminated attribute value")
		}
		v := p.src[p.pos+1 : p.pos+1+end]
		p.pos += end + 2
		return v, nil
	}
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '>' && !unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}
