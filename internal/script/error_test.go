package script

import (
	"strings"
	"testing"

	"vista/internal/inspect"
)

func sampleFrames() []inspect.StackFrame {
	return []inspect.StackFrame{
		{Function: "host.Eval", File: "eval.go", Line: 210},
		{Function: "main", File: "session.vs", Line: 1, Script: true},
		{Function: "compute", File: "session.vs", Line: 9, Script: true},
		{Function: "host.Index", File: "runtime.go", Line: 55},
	}
}

func TestErrorString(t *testing.T) {
	e := &Error{Code: ErrDivisionByZero, Msg: "division by zero"}
	if got := e.Error(); got != "SCR2005: division by zero" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCodeString(t *testing.T) {
	if got := ErrParse.String(); got != "SCR2001" {
		t.Errorf("String() = %q, want SCR2001", got)
	}
}

func TestBuilderCapturesFrames(t *testing.T) {
	b := NewBuilder(sampleFrames)

	e := b.IndexOutOfRange(4, 3)
	if e.Code != ErrIndexOutOfRange {
		t.Errorf("code = %v", e.Code)
	}
	if e.Msg != "index 4 out of range for length 3" {
		t.Errorf("msg = %q", e.Msg)
	}
	if len(e.Frames) != 4 {
		t.Errorf("frames = %d, want 4", len(e.Frames))
	}
}

func TestBuilderWithoutCapture(t *testing.T) {
	b := NewBuilder(nil)
	if e := b.DivisionByZero(); len(e.Frames) != 0 {
		t.Errorf("frames = %d, want 0", len(e.Frames))
	}
}

func TestStackTraceFiltersHostSuffix(t *testing.T) {
	e := &Error{Code: ErrIndexOutOfRange, Msg: "index 4 out of range", Frames: sampleFrames()}

	trace := e.StackTrace()
	if !strings.Contains(trace, "session.vs:9") {
		t.Errorf("trace missing deepest script frame:\n%s", trace)
	}
	if strings.Contains(trace, "runtime.go") {
		t.Errorf("host frames beneath the deepest script frame must be dropped:\n%s", trace)
	}
	if lines := strings.Split(trace, "\n"); len(lines) != 3 {
		t.Errorf("trace has %d lines, want 3:\n%s", len(lines), trace)
	}
}

func TestInspectionTree(t *testing.T) {
	b := NewBuilder(sampleFrames)
	tree := inspect.CreateError(b.TypeMismatch("int", "string"))

	if tree.Label != "*script.Error" {
		t.Errorf("label = %q", tree.Label)
	}
	if tree.Message != "SCR2002: expected int, got string" {
		t.Errorf("message = %q", tree.Message)
	}
	// Deepest script frame in sampleFrames is session.vs:9.
	if tree.SourceLine != 9 {
		t.Errorf("source line = %d, want 9", tree.SourceLine)
	}

	if len(tree.Children) != 3 {
		t.Fatalf("expected Code, Message, StackTrace members, got %d children", len(tree.Children))
	}
	if tree.Children[0].Label != "Code" || tree.Children[0].Value != "SCR2002" {
		t.Errorf("Code member = {%q, %q}", tree.Children[0].Label, tree.Children[0].Value)
	}
	if tree.Children[1].Label != "Message" {
		t.Errorf("second member = %q, want Message", tree.Children[1].Label)
	}
	if tree.Children[2].Label != "StackTrace" {
		t.Errorf("third member = %q, want StackTrace", tree.Children[2].Label)
	}
}
