// Package util holds formatting helpers shared by the TablePrint methods
package util

import "strings"

// IndentExpand returns the indent repeated for the given nesting level. Levels at or below 0 have
// no indentation.
func IndentExpand(indent string, level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(indent, level)
}
