// Package tasks extracts a task breakdown from synthesized markdown text
// using goldmark for parsing. Every list item (bulleted or numbered)
// becomes one task, in document order.
package tasks

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/fwojciec/kickoff"
)

// Parse returns the tasks found in source, or nil when it contains no
// list items. Parsing never fails: unparseable text simply yields no
// tasks, which the caller treats as a partial success.
func Parse(source string) []kickoff.Task {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var result []kickoff.Task
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		item, ok := n.(*ast.ListItem)
		if !ok {
			return ast.WalkContinue, nil
		}
		if name := itemText(item, src); name != "" {
			result = append(result, kickoff.Task{Name: name})
		}
		return ast.WalkContinue, nil
	})
	return result
}

// itemText renders the item's first block child to plain text. Nested
// lists under the item are separate ListItem nodes and are collected by
// the walk, not here.
func itemText(item *ast.ListItem, src []byte) string {
	block := item.FirstChild()
	if block == nil {
		return ""
	}
	var sb strings.Builder
	collectText(block, src, &sb)
	return trimCheckbox(strings.TrimSpace(sb.String()))
}

func collectText(n ast.Node, src []byte, sb *strings.Builder) {
	if t, ok := n.(*ast.Text); ok {
		sb.Write(t.Segment.Value(src))
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		collectText(c, src, sb)
	}
}

// trimCheckbox strips a leading "[ ]" or "[x]" marker. The default parser
// has no task-list extension, so checkbox markers survive as literal text.
func trimCheckbox(s string) string {
	for _, marker := range []string{"[ ]", "[x]", "[X]"} {
		if strings.HasPrefix(s, marker) {
			return strings.TrimSpace(s[len(marker):])
		}
	}
	return s
}
