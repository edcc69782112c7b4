// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package page

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/pagelog/internal/pagelog"
)

func TestDocumentElements(t *testing.T) {
	t.Parallel()

	doc := NewDocument("test")
	_, found := doc.ElementByID("missing")
	assert.False(t, found)
	assert.Empty(t, doc.Elements())

	doc.AppendTextarea("first", 5, 40, "readonly")
	doc.AppendTextarea("second", 10, 20, "")

	element, found := doc.Element("first")
	require.True(t, found)
	assert.Equal(t, "first", element.ID())
	assert.Equal(t, 5, element.Rows())
	assert.Equal(t, 40, element.Cols())
	assert.Equal(t, "readonly", element.Attributes())

	buffer, found := doc.ElementByID("second")
	require.True(t, found)
	buffer.Append("one ")
	buffer.Append("two")
	second, _ := doc.Element("second")
	assert.Equal(t, "one two", second.Value())

	buffer.Reset()
	assert.Empty(t, second.Value())

	second.SetValue("replaced")
	assert.Equal(t, "replaced", second.Value())

	ids := make([]string, 0)
	for _, element := range doc.Elements() {
		ids = append(ids, element.ID())
	}
	assert.Equal(t, []string{"first", "second"}, ids)
}

func TestAppendTextareaReplacesExistingID(t *testing.T) {
	t.Parallel()

	doc := NewDocument("test")
	doc.AppendTextarea("log", 5, 40, "")
	doc.AppendTextarea("other", 5, 40, "")

	old, _ := doc.Element("log")
	old.Append("stale")

	doc.AppendTextarea("log", 8, 60, "")

	element, found := doc.Element("log")
	require.True(t, found)
	assert.Equal(t, 8, element.Rows())
	assert.Empty(t, element.Value())

	elements := doc.Elements()
	require.Len(t, elements, 2)
	assert.Equal(t, "other", elements[0].ID())
	assert.Equal(t, "log", elements[1].ID())
}

func TestRender(t *testing.T) {
	t.Parallel()

	doc := NewDocument("Page <log>")
	doc.AppendTextarea("foo", 5, 40, `class="log" readonly`)
	element, _ := doc.Element("foo")
	element.Append("[Info] <b>bold</b>\n")

	buffer := new(bytes.Buffer)
	require.NoError(t, doc.Render(buffer))

	out := buffer.String()
	assert.Contains(t, out, "<title>Page &lt;log&gt;</title>")
	assert.Contains(t, out, `<textarea id="foo" rows="5" cols="40" class="log" readonly >`)
	assert.Contains(t, out, "[Info] &lt;b&gt;bold&lt;/b&gt;\n</textarea>")
}

func TestConcurrentWriters(t *testing.T) {
	t.Parallel()

	doc := NewDocument("test")
	doc.AppendTextarea("shared", 5, 40, "")

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log := pagelog.New(doc, nil, pagelog.WithTargetElementID("shared"))
			for range 10 {
				log.Print("x")
			}
		}()
	}
	wg.Wait()

	element, _ := doc.Element("shared")
	assert.Len(t, element.Value(), 100*len("[Log] x\n"))
}
