// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// cdataPattern matches CDATA sections in storage-format bodies. The HTML5
// parser would otherwise treat them as bogus comments and drop the content.
var cdataPattern = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)

// macroNestingLimit bounds the rewrite passes over nested macros.
const macroNestingLimit = 10

// normalizeStorageHTML rewrites Confluence storage markup into plain HTML
// the Markdown converter understands:
//
//   - code macros become <pre><code> blocks, keeping the language parameter
//   - other structured macros are flattened to their rich-text body, or
//     removed when they have none
//   - ac:link elements are flattened to their link text or target title
//   - ac:image elements become the attachment filename, or an <img> for
//     external URLs
//   - emoticons and placeholders are dropped
//
// Parsing is error-tolerant; on a parser failure the input is returned
// unchanged so conversion still produces partial text.
func normalizeStorageHTML(raw string) string {
	raw = cdataPattern.ReplaceAllStringFunc(raw, func(m string) string {
		inner := cdataPattern.FindStringSubmatch(m)[1]
		return html.EscapeString(inner)
	})

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}

	// Macro bodies can contain further macros; each pass rewrites the
	// macros present and the next pass picks up the ones their bodies
	// introduced.
	for i := 0; i < macroNestingLimit; i++ {
		macros := doc.Find(`ac\:structured-macro`)
		if macros.Length() == 0 {
			break
		}
		macros.Each(rewriteMacro)
	}

	doc.Find(`ac\:link`).Each(rewriteLink)
	doc.Find(`ac\:image`).Each(rewriteImage)
	doc.Find(`ac\:emoticon, ac\:placeholder`).Remove()

	out, err := doc.Find("body").Html()
	if err != nil {
		return raw
	}
	return out
}

func rewriteMacro(_ int, s *goquery.Selection) {
	name := s.AttrOr("ac:name", "")

	switch name {
	case "code":
		lang := macroParameter(s, "language")
		code := s.Find(`ac\:plain-text-body`).Text()
		var class string
		if lang != "" {
			class = fmt.Sprintf(" class=%q", "language-"+lang)
		}
		s.ReplaceWithHtml(fmt.Sprintf("<pre><code%s>%s</code></pre>", class, html.EscapeString(code)))
	case "noformat":
		text := s.Find(`ac\:plain-text-body`).Text()
		s.ReplaceWithHtml("<pre><code>" + html.EscapeString(text) + "</code></pre>")
	default:
		body := s.Find(`ac\:rich-text-body`).First()
		if body.Length() == 0 {
			s.Remove()
			return
		}
		inner, err := body.Html()
		if err != nil || strings.TrimSpace(inner) == "" {
			s.Remove()
			return
		}
		s.ReplaceWithHtml(inner)
	}
}

// macroParameter returns the value of the named ac:parameter child.
func macroParameter(s *goquery.Selection, name string) string {
	var value string
	s.Find(`ac\:parameter`).EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if p.AttrOr("ac:name", "") == name {
			value = strings.TrimSpace(p.Text())
			return false
		}
		return true
	})
	return value
}

// rewriteLink flattens an ac:link to its visible text. Confluence-internal
// page links have no stable URL outside the instance, so only the text
// survives.
func rewriteLink(_ int, s *goquery.Selection) {
	text := strings.TrimSpace(s.Find(`ac\:plain-text-link-body, ac\:link-body`).Text())
	if text == "" {
		text = strings.TrimSpace(s.Find(`ri\:page`).AttrOr("ri:content-title", ""))
	}
	if text == "" {
		s.Remove()
		return
	}
	s.ReplaceWithHtml(html.EscapeString(text))
}

// rewriteImage keeps externally hosted images and reduces attachment
// references to their filename, since attachments are not exported.
func rewriteImage(_ int, s *goquery.Selection) {
	if src := s.Find(`ri\:url`).AttrOr("ri:value", ""); src != "" {
		s.ReplaceWithHtml(fmt.Sprintf("<img src=%q>", src))
		return
	}
	if filename := s.Find(`ri\:attachment`).AttrOr("ri:filename", ""); filename != "" {
		s.ReplaceWithHtml("<em>" + html.EscapeString(filename) + "</em>")
		return
	}
	s.Remove()
}
