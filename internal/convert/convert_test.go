// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBasicHTML(t *testing.T) {
	c := NewStorageConverter()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "paragraph",
			html: "<p>Hi</p>",
			want: []string{"Hi"},
		},
		{
			name: "heading and emphasis",
			html: "<h2>Overview</h2><p>Some <strong>bold</strong> text.</p>",
			want: []string{"## Overview", "**bold**"},
		},
		{
			name: "list",
			html: "<ul><li>first</li><li>second</li></ul>",
			want: []string{"- first", "- second"},
		},
		{
			name: "link",
			html: `<p><a href="https://example.com">example</a></p>`,
			want: []string{"[example](https://example.com)"},
		},
		{
			name: "table best effort",
			html: "<table><tr><th>Name</th></tr><tr><td>value</td></tr></table>",
			want: []string{"Name", "value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.html)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	c := NewStorageConverter()
	html := `<h1>Title</h1><p>Body with <em>markup</em>.</p><ul><li>a</li><li>b</li></ul>`

	first, err := c.Convert(html)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := c.Convert(html)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestConvertCodeMacro(t *testing.T) {
	c := NewStorageConverter()
	html := `<ac:structured-macro ac:name="code">` +
		`<ac:parameter ac:name="language">go</ac:parameter>` +
		`<ac:plain-text-body><![CDATA[fmt.Println("hi")]]></ac:plain-text-body>` +
		`</ac:structured-macro>`

	got, err := c.Convert(html)
	require.NoError(t, err)
	assert.Contains(t, got, "```")
	assert.Contains(t, got, `fmt.Println("hi")`)
	assert.NotContains(t, got, "structured-macro")
	assert.NotContains(t, got, "CDATA")
}

func TestConvertRichBodyMacroFlattens(t *testing.T) {
	c := NewStorageConverter()
	html := `<ac:structured-macro ac:name="info">` +
		`<ac:rich-text-body><p>Keep this note.</p></ac:rich-text-body>` +
		`</ac:structured-macro>`

	got, err := c.Convert(html)
	require.NoError(t, err)
	assert.Contains(t, got, "Keep this note.")
	assert.NotContains(t, got, "structured-macro")
}

func TestConvertBodylessMacroDropped(t *testing.T) {
	c := NewStorageConverter()
	html := `<p>before</p><ac:structured-macro ac:name="toc"></ac:structured-macro><p>after</p>`

	got, err := c.Convert(html)
	require.NoError(t, err)
	assert.Contains(t, got, "before")
	assert.Contains(t, got, "after")
	assert.NotContains(t, got, "toc")
}

func TestConvertPageLinkFlattens(t *testing.T) {
	c := NewStorageConverter()
	html := `<p>See <ac:link><ri:page ri:content-title="Other Page"></ri:page>` +
		`<ac:plain-text-link-body><![CDATA[the other page]]></ac:plain-text-link-body>` +
		`</ac:link> for details.</p>`

	got, err := c.Convert(html)
	require.NoError(t, err)
	assert.Contains(t, got, "the other page")
	assert.NotContains(t, got, "ac:link")
}

func TestConvertAttachmentImageFlattens(t *testing.T) {
	c := NewStorageConverter()
	html := `<p>diagram:</p><ac:image><ri:attachment ri:filename="diagram.png"></ri:attachment></ac:image>`

	got, err := c.Convert(html)
	require.NoError(t, err)
	assert.Contains(t, got, "diagram.png")
	assert.NotContains(t, got, "ac:image")
}

func TestConvertEmoticonDropped(t *testing.T) {
	c := NewStorageConverter()
	html := `<p>done <ac:emoticon ac:name="smile"></ac:emoticon></p>`

	got, err := c.Convert(html)
	require.NoError(t, err)
	assert.Contains(t, got, "done")
	assert.NotContains(t, got, "emoticon")
}

func TestConvertMalformedHTMLDegrades(t *testing.T) {
	c := NewStorageConverter()

	got, err := c.Convert("<p>open paragraph <b>no closing tags")
	require.NoError(t, err)
	assert.Contains(t, got, "open paragraph")
	assert.Contains(t, got, "no closing tags")
}

func TestConvertEmptyInput(t *testing.T) {
	c := NewStorageConverter()

	got, err := c.Convert("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
