package cleanup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func TestSplitCells(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "outer pipes", line: "| a | b |", want: []string{"a", "b"}},
		{name: "no outer pipes", line: "a | b", want: []string{"a", "b"}},
		{name: "inner empty cell kept", line: "| a |  | c |", want: []string{"a", "", "c"}},
		{name: "strips code and bold", line: "| `kubectl` | **required** |", want: []string{"kubectl", "required"}},
		{name: "strips double dashes", line: "| --name | value |", want: []string{"name", "value"}},
		{name: "collapses whitespace", line: "|  a   long\tcell | b |", want: []string{"a long cell", "b"}},
		{name: "separator reduces to dashes", line: "|---|---|", want: []string{"-", "-"}},
		{name: "only pipes", line: "| | |", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitCells(tt.line))
		})
	}
}

func TestIsTableLine(t *testing.T) {
	assert.True(t, isTableLine("| a | b |"))
	assert.True(t, isTableLine("a | b"))
	assert.False(t, isTableLine("![diagram](a|b.png)"))
	assert.False(t, isTableLine("```|"))
	assert.False(t, isTableLine("no pipes here"))
}

func TestTableBuffer_Flush(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "nothing buffered",
			lines: nil,
			want:  nil,
		},
		{
			name:  "header only",
			lines: []string{"| A | B |"},
			want:  []string{"", "| A | B |", "| --- | --- |", ""},
		},
		{
			name:  "short rows padded to widest",
			lines: []string{"| a | b |", "| 1 | 2 | 3 |", "| x | y |"},
			want: []string{
				"",
				"| a | b |  |",
				"| --- | --- | --- |",
				"| 1 | 2 | 3 |",
				"| x | y |  |",
				"",
			},
		},
		{
			name:  "source separator and dash rows skipped",
			lines: []string{"| Flag | Meaning |", "|---|---|", "| - | |", "| -v | verbose |"},
			want: []string{
				"",
				"| Flag | Meaning |",
				"| --- | --- |",
				"| -v | verbose |",
				"",
			},
		},
		{
			name:  "callout rows dropped",
			lines: []string{"| Important Note: read first |", "| Name | Value |", "| Values below given | x |"},
			want:  []string{"", "| Name | Value |", "| --- | --- |", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tb tableBuffer
			for _, line := range tt.lines {
				tb.feed(line)
			}
			assert.Equal(t, tt.want, tb.flush())
			assert.True(t, tb.empty())
		})
	}
}

func TestTableBuffer_RendersGFMTable(t *testing.T) {
	var tb tableBuffer
	for _, line := range []string{"| a | b |", "| 1 | 2 | 3 |", "| x | y |"} {
		tb.feed(line)
	}
	src := []byte(strings.Join(tb.flush(), "\n"))

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(src))

	var tables []*extast.Table
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if tbl, ok := n.(*extast.Table); ok && entering {
			tables = append(tables, tbl)
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	require.Len(t, tables, 1)

	header := tables[0].FirstChild()
	require.IsType(t, &extast.TableHeader{}, header)
	assert.Equal(t, 3, header.ChildCount())
	assert.Equal(t, 3, tables[0].ChildCount()) // header + two rows
}
