// Package etree provides an XML implementation of bee.Normalizer using
// github.com/beevik/etree.
//
// The document root element is unwrapped: its attributes and children become
// the record's top-level keys. Elements convert as follows:
//
//   - attributes become keys prefixed with AttrPrefix, before child keys;
//   - child elements become keys named by their full tag (prefix:tag);
//     repeated tags collapse into a sequence at the first occurrence;
//   - an element with no attributes and no children becomes its trimmed text;
//   - non-blank text next to attributes or children is stored under TextKey.
//
// Neither prefix is legal at the start of an XML name, so attribute, text
// and child keys never collide.
package etree

import (
	"bytes"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/bee"
)

// Key prefixes for attribute and text content.
const (
	AttrPrefix = "@"
	TextKey    = "#text"
)

// Ensure Normalizer implements bee.Normalizer at compile time.
var _ bee.Normalizer = (*Normalizer)(nil)

// Normalizer converts XML documents into record trees.
type Normalizer struct{}

// NewNormalizer creates a new XML Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize parses raw as an XML document.
// Returns EFORMAT for malformed XML, text outside the root element or more
// than one root element. Returns EEMPTY when the document has no root
// element or the root has no attributes, children or text.
func (n *Normalizer) Normalize(source string, raw []byte) (bee.Value, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, bee.SourceErrorf(bee.EEMPTY, source, "empty XML document")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid XML: %v", err)
	}

	root, err := documentRoot(source, doc)
	if err != nil {
		return nil, err
	}

	m := convertMapping(root)
	if m.Len() == 0 {
		return nil, bee.SourceErrorf(bee.EEMPTY, source, "root element <%s> is empty", root.FullTag())
	}
	return m, nil
}

// documentRoot returns the single root element of doc. Only comments,
// processing instructions, directives and whitespace may surround it.
func documentRoot(source string, doc *etree.Document) (*etree.Element, error) {
	var root *etree.Element
	for _, tok := range doc.Child {
		switch tok := tok.(type) {
		case *etree.Element:
			if root != nil {
				return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid XML: multiple root elements <%s> and <%s>", root.FullTag(), tok.FullTag())
			}
			root = tok
		case *etree.CharData:
			if strings.TrimSpace(tok.Data) != "" {
				return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid XML: text outside root element")
			}
		}
	}
	if root == nil {
		return nil, bee.SourceErrorf(bee.EEMPTY, source, "no root element in XML document")
	}
	return root, nil
}

func convertElement(el *etree.Element) bee.Value {
	if len(el.Attr) == 0 && len(el.ChildElements()) == 0 {
		return bee.String(directText(el))
	}
	return convertMapping(el)
}

func convertMapping(el *etree.Element) *bee.Mapping {
	m := bee.NewMapping()
	for _, attr := range el.Attr {
		m.Set(AttrPrefix+attr.FullKey(), bee.String(attr.Value))
	}

	for _, child := range el.ChildElements() {
		key := child.FullTag()
		v := convertElement(child)

		existing, ok := m.Get(key)
		if !ok {
			m.Set(key, v)
			continue
		}
		// Child values are never sequences, so an existing sequence
		// means the tag has already repeated.
		if seq, ok := existing.(bee.Sequence); ok {
			m.Set(key, append(seq, v))
		} else {
			m.Set(key, bee.Sequence{existing, v})
		}
	}

	if text := directText(el); text != "" {
		m.Set(TextKey, bee.String(text))
	}
	return m
}

// directText returns the trimmed character data directly inside el,
// including CDATA sections and excluding text of child elements.
func directText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return strings.TrimSpace(b.String())
}
