// Package diff renders line differences between two documents.
package diff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns a line-oriented diff turning from into to. Removed lines are
// prefixed with "-", added lines with "+" and unchanged lines with a space.
// The result is empty when the documents are equal. When colored is true,
// removed and added lines are painted red and green.
func Lines(from, to string, colored bool) string {
	if from == to {
		return ""
	}

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}

	var sb strings.Builder
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				sb.WriteString(del.Sprint("-" + line))
			case diffpatch.DiffInsert:
				sb.WriteString(ins.Sprint("+" + line))
			case diffpatch.DiffEqual:
				sb.WriteString(" " + line)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// splitLines splits s into lines without their terminators. A missing final
// newline does not produce an extra empty line.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
