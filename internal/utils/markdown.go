package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown removes markdown formatting from LLM-generated answers,
// returning plain text suitable for API responses.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	flattenNode(doc, &buf)

	result := strings.TrimSpace(buf.String())
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")

	return result
}

// flattenNode walks the markdown AST collecting literal text.
func flattenNode(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return
	case *ast.Code:
		buf.Write(n.Literal)
		return
	case *ast.CodeBlock:
		buf.Write(n.Literal)
		buf.WriteString("\n")
		return
	case *ast.Hardbreak, *ast.Softbreak:
		buf.WriteString("\n")
		return
	case *ast.HorizontalRule:
		buf.WriteString("\n")
		return
	}

	for _, child := range node.GetChildren() {
		flattenNode(child, buf)
	}

	// Block-level nodes separate their content with a newline
	switch node.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.BlockQuote:
		buf.WriteString("\n")
	}
}
