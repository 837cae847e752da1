// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements HTML-to-Markdown conversion for Confluence
// storage-format page bodies.
package convert

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Converter transforms an HTML page body into Markdown text.
type Converter interface {
	// Convert returns the Markdown rendering of html. The transformation
	// is deterministic: the same input always yields the same output.
	Convert(html string) (string, error)
}

// StorageConverter converts Confluence storage-format HTML. Platform
// markup the Markdown cannot represent (macros, emoticons, attachment
// references) is rewritten or dropped before conversion; code macros
// become fenced code blocks.
type StorageConverter struct{}

// NewStorageConverter creates a StorageConverter.
func NewStorageConverter() *StorageConverter {
	return &StorageConverter{}
}

// Convert normalizes the storage markup and renders it as Markdown.
// Malformed HTML degrades to whatever text the parser recovers rather
// than erroring.
func (c *StorageConverter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	normalized := normalizeStorageHTML(html)

	markdown, err := htmltomarkdown.ConvertString(normalized)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(markdown), nil
}
