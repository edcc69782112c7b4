// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package page

import (
	"html/template"
	"io"
	"slices"
	"sync"

	"github.com/mia-platform/pagelog/internal/pagelog"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head><title>{{ .Title }}</title></head>
<body>
{{- range .Elements }}
<textarea id="{{ .ID }}" rows="{{ .Rows }}" cols="{{ .Cols }}" {{ .Attributes }} >{{ .Value }}</textarea>
{{- end }}
</body>
</html>
`

var (
	_ pagelog.Document = &Document{}

	renderTemplate = template.Must(template.New("page").Parse(pageTemplate))
)

// Document is a page made of text region elements, safe for concurrent use.
type Document struct {
	title string

	lock     sync.RWMutex
	order    []string
	elements map[string]*Element
}

// NewDocument returns an empty page with the given title.
func NewDocument(title string) *Document {
	return &Document{
		title:    title,
		elements: make(map[string]*Element),
	}
}

// ElementByID implements pagelog.Document.
func (d *Document) ElementByID(id string) (pagelog.TextBuffer, bool) {
	element, ok := d.Element(id)
	if !ok {
		return nil, false
	}
	return element, true
}

// Element returns the element with the given id.
func (d *Document) Element(id string) (*Element, bool) {
	d.lock.RLock()
	defer d.lock.RUnlock()

	element, ok := d.elements[id]
	return element, ok
}

// Elements returns the page elements in the order they were appended.
func (d *Document) Elements() []*Element {
	d.lock.RLock()
	defer d.lock.RUnlock()

	elements := make([]*Element, 0, len(d.order))
	for _, id := range d.order {
		elements = append(elements, d.elements[id])
	}
	return elements
}

// AppendTextarea adds an empty element at the end of the page. An element already
// using id is removed first, so the last append wins.
func (d *Document) AppendTextarea(id string, rows, cols int, attributes string) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if _, found := d.elements[id]; found {
		d.order = slices.DeleteFunc(d.order, func(existing string) bool { return existing == id })
	}

	d.elements[id] = &Element{
		id:         id,
		rows:       rows,
		cols:       cols,
		attributes: attributes,
	}
	d.order = append(d.order, id)
}

type renderedElement struct {
	ID         string
	Rows       int
	Cols       int
	Attributes template.HTMLAttr
	Value      string
}

// Render writes the page as HTML to w.
func (d *Document) Render(w io.Writer) error {
	elements := d.Elements()
	data := struct {
		Title    string
		Elements []renderedElement
	}{
		Title:    d.title,
		Elements: make([]renderedElement, 0, len(elements)),
	}

	for _, element := range elements {
		data.Elements = append(data.Elements, renderedElement{
			ID:   element.ID(),
			Rows: element.Rows(),
			Cols: element.Cols(),
			// attributes are page markup provided by the page author
			Attributes: template.HTMLAttr(element.Attributes()),
			Value:      element.Value(),
		})
	}

	return renderTemplate.Execute(w, data)
}
