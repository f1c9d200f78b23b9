package inspect

import (
	"fmt"
	"strings"
)

// StackFrame is one captured call-stack frame, ordered outermost first.
// Script marks frames that belong to dynamically compiled script code rather
// than the host runtime.
type StackFrame struct {
	Function string
	File     string
	Line     int
	Script   bool
}

// StackProvider is implemented by errors that carry a captured call stack
// with the script boundary marked.
type StackProvider interface {
	StackFrames() []StackFrame
}

// CreateError builds the display tree for a thrown error. The tree itself is
// the ordinary Create rendering of the error value, member and leaf logic
// included, built at depth 0; on top of that the root carries the error
// message and the source line of the deepest frame attributable to script
// code, 0 when no frame matches.
func CreateError(err error) *Node {
	n := build(err, "", 0)
	n.Message = truncateText(err.Error())
	n.SourceLine = scriptLine(err)
	return n
}

// scriptLine returns the line of the user's own deepest call, scanning the
// captured stack for frames on the script side of the boundary.
func scriptLine(err error) int {
	sp, ok := err.(StackProvider)
	if !ok {
		return 0
	}
	line := 0
	for _, fr := range sp.StackFrames() {
		if fr.Script {
			line = fr.Line
		}
	}
	return line
}

// FormatStack renders frames one per line, keeping only the prefix that runs
// from the outermost frame through the deepest script frame. Host frames
// beneath the user's own deepest call are dropped; a stack with no script
// frames renders empty.
func FormatStack(frames []StackFrame) string {
	last := -1
	for i, fr := range frames {
		if fr.Script {
			last = i
		}
	}
	if last < 0 {
		return ""
	}

	var b strings.Builder
	for i, fr := range frames[:last+1] {
		if i > 0 {
			b.WriteByte('\n')
		}
		loc := "<no-span>"
		if fr.File != "" {
			loc = fmt.Sprintf("%s:%d", fr.File, fr.Line)
		}
		fmt.Fprintf(&b, "%s at %s", fr.Function, loc)
	}
	return b.String()
}
