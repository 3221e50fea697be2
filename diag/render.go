package diag

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Render formats a diagnostic as a message followed by the offending
// source line with a caret under the failure position:
//
//	unexpected token "{"
//	  array{a: int}
//	       ^
//
// The caret column is computed with grapheme-aware display widths so
// it stays aligned for multi-byte and wide characters.
func Render(d *Diagnostic) string {
	line, col := lineAround(d.Source, d.Offset)
	var sb strings.Builder
	sb.WriteString(d.Message())
	sb.WriteByte('\n')
	sb.WriteString("  ")
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString("  ")
	sb.WriteString(strings.Repeat(" ", uniseg.StringWidth(line[:col])))
	sb.WriteByte('^')
	return sb.String()
}

// lineAround returns the line of source containing offset and the
// byte column of offset within that line.
func lineAround(source string, offset int) (line string, col int) {
	if offset > len(source) {
		offset = len(source)
	}
	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := strings.IndexByte(source[offset:], '\n')
	if end < 0 {
		end = len(source)
	} else {
		end += offset
	}
	return source[start:end], offset - start
}
