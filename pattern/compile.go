package pattern

import "fmt"

// CompileError reports a template New could not compile. Pos is the byte
// offset of the construct that failed, counted from the start of the
// template; Token is the offending field name or symbol.
type CompileError struct {
	Reason string
	Token  string
	Pos    int
}

func (e *CompileError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("pattern: %s at offset %d", e.Reason, e.Pos)
	}
	return fmt.Sprintf("pattern: %s %q at offset %d", e.Reason, e.Token, e.Pos)
}

type parser struct {
	tmpl      string
	styleSeen bool
}

func parse(template string) ([]item, error) {
	p := &parser{tmpl: template}
	return p.parseRange(0, len(template), false)
}

// parseRange compiles tmpl[start:end]. Offsets in errors are absolute, so
// recursing into a styled span keeps positions meaningful.
func (p *parser) parseRange(start, end int, inSpan bool) ([]item, error) {
	var items []item
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			items = append(items, literalItem(string(lit)))
			lit = lit[:0]
		}
	}

	i := start
	for i < end {
		c := p.tmpl[i]
		switch c {
		case '{':
			if i+1 < end && p.tmpl[i+1] == '{' {
				lit = append(lit, '{')
				i += 2
				continue
			}
			if i+1 < end && p.tmpl[i+1] == '^' {
				if inSpan {
					return nil, &CompileError{Reason: "nested styled span", Token: "{^", Pos: i}
				}
				if p.styleSeen {
					return nil, &CompileError{Reason: "second styled span", Token: "{^", Pos: i}
				}
				p.styleSeen = true
				closing := p.findSpanEnd(i+2, end)
				if closing < 0 {
					return nil, &CompileError{Reason: "unterminated styled span", Token: "{^", Pos: i}
				}
				inner, err := p.parseRange(i+2, closing, true)
				if err != nil {
					return nil, err
				}
				flush()
				items = append(items, &styledSpanItem{items: inner})
				i = closing + 1
				continue
			}
			it, next, err := p.parseField(i, end)
			if err != nil {
				return nil, err
			}
			flush()
			items = append(items, it)
			i = next
		case '}':
			if i+1 < end && p.tmpl[i+1] == '}' {
				lit = append(lit, '}')
				i += 2
				continue
			}
			return nil, &CompileError{Reason: "unexpected", Token: "}", Pos: i}
		default:
			lit = append(lit, c)
			i++
		}
	}
	flush()
	return items, nil
}

// parseField consumes a {name} placeholder starting at the brace at open and
// returns the resolved item and the offset just past the closing brace.
func (p *parser) parseField(open, end int) (item, int, error) {
	i := open + 1
	for i < end && isFieldChar(p.tmpl[i]) {
		i++
	}
	if i >= end {
		return nil, 0, &CompileError{Reason: "unterminated field", Token: "{", Pos: open}
	}
	if p.tmpl[i] != '}' {
		return nil, 0, &CompileError{Reason: "malformed field", Token: string(p.tmpl[i]), Pos: open}
	}
	name := p.tmpl[open+1 : i]
	if name == "" {
		return nil, 0, &CompileError{Reason: "empty field", Token: "{}", Pos: open}
	}
	it, ok := fields[name]
	if !ok {
		return nil, 0, &CompileError{Reason: "unknown field", Token: name, Pos: open}
	}
	return it, i + 1, nil
}

// findSpanEnd locates the brace closing a styled span whose body starts at
// start. Brace escapes only count outside placeholders: inside {name} a brace
// is structural.
func (p *parser) findSpanEnd(start, end int) int {
	depth := 1
	for i := start; i < end; {
		switch p.tmpl[i] {
		case '{':
			if depth == 1 && i+1 < end && p.tmpl[i+1] == '{' {
				i += 2
				continue
			}
			depth++
			i++
		case '}':
			if depth == 1 && i+1 < end && p.tmpl[i+1] == '}' {
				i += 2
				continue
			}
			depth--
			if depth == 0 {
				return i
			}
			i++
		default:
			i++
		}
	}
	return -1
}

func isFieldChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
}
