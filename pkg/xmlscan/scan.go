// Package xmlscan walks XML documents element by element.
//
// Documents are always read to the end so that a malformed document is
// reported even when a match was seen before the syntax error, the same
// way a tree-building parser rejects the whole file.
package xmlscan

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMalformed is wrapped by every well-formedness error returned from Walk.
var ErrMalformed = errors.New("malformed XML")

// Element is a single element as seen by Walk.
type Element struct {
	Name  xml.Name
	Attr  []xml.Attr
	Text  string // character data before the first child element
	Depth int    // 0 for the root element
}

// AttrValue returns the value of the unprefixed attribute named local.
func (e Element) AttrValue(local string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

type frame struct {
	el      Element
	text    strings.Builder
	emitted bool
}

// Walk decodes r and calls visit for each element in document order, once
// the element's own text is known. visit returns true to stop visiting;
// decoding still continues so well-formedness is checked for the whole
// document. A leading UTF-8 or UTF-16 byte order mark is consumed and the
// document is decoded to UTF-8 before parsing.
func Walk(r io.Reader, visit func(Element) bool) error {
	d := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder())))
	d.CharsetReader = charsetReader

	var (
		stack      []*frame
		stopped    bool
		rootClosed bool
	)

	emit := func(f *frame) {
		if f.emitted {
			return
		}
		f.emitted = true
		f.el.Text = f.text.String()
		if !stopped {
			stopped = visit(f.el)
		}
	}

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return fmt.Errorf("%w: junk after document element <%s>", ErrMalformed, t.Name.Local)
			}
			if n := len(stack); n > 0 {
				emit(stack[n-1])
			}
			stack = append(stack, &frame{el: Element{
				Name:  t.Name,
				Attr:  t.Copy().Attr,
				Depth: len(stack),
			}})
		case xml.CharData:
			if len(stack) == 0 {
				if len(strings.TrimSpace(string(t))) > 0 {
					return fmt.Errorf("%w: text outside of document element", ErrMalformed)
				}
				continue
			}
			if top := stack[len(stack)-1]; !top.emitted {
				top.text.Write(t)
			}
		case xml.EndElement:
			top := stack[len(stack)-1]
			emit(top)
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				rootClosed = true
			}
		}
	}

	if len(stack) > 0 {
		return fmt.Errorf("%w: unclosed element <%s>", ErrMalformed, stack[len(stack)-1].el.Name.Local)
	}
	if !rootClosed {
		return fmt.Errorf("%w: no element found", ErrMalformed)
	}
	return nil
}

// FindElement returns the first element named local whose text satisfies match.
func FindElement(r io.Reader, local string, match func(text string) bool) (Element, bool, error) {
	var (
		hit   Element
		found bool
	)
	err := Walk(r, func(e Element) bool {
		if e.Name.Local == local && match(e.Text) {
			hit, found = e, true
		}
		return found
	})
	if err != nil {
		return Element{}, false, err
	}
	return hit, found, nil
}

// FindAttr returns the first element carrying an unprefixed attribute named
// attr whose value satisfies match, along with that value.
func FindAttr(r io.Reader, attr string, match func(value string) bool) (Element, string, bool, error) {
	var (
		hit   Element
		value string
		found bool
	)
	err := Walk(r, func(e Element) bool {
		if v, ok := e.AttrValue(attr); ok && match(v) {
			hit, value, found = e, v, true
		}
		return found
	})
	if err != nil {
		return Element{}, "", false, err
	}
	return hit, value, found, nil
}

// charsetReader decodes declared encodings to UTF-8. UTF-16 input can only
// get past the declaration when a byte order mark was already decoded, so
// utf-16 labels pass through.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	if strings.HasPrefix(strings.ToLower(label), "utf-16") {
		return input, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
