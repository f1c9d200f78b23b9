package inspect

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	tree := Create(map[string]any{"A": 1}, "m")

	var buf bytes.Buffer
	if err := WriteJSON(&buf, tree); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `"label": "m"`) {
		t.Errorf("missing root label:\n%s", out)
	}
	if !strings.Contains(out, `"label": "A"`) {
		t.Errorf("missing member label:\n%s", out)
	}

	// The output must be valid JSON that round-trips into the mirror type.
	var back NodeJSON
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(back.Children) != 1 || back.Children[0].Value != "1" {
		t.Errorf("round-trip mismatch: %+v", back)
	}
}

func TestJSONOmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, &Node{Value: "42"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()

	for _, field := range []string{"label", "message", "source_line", "children"} {
		if strings.Contains(out, field) {
			t.Errorf("empty %s must be omitted:\n%s", field, out)
		}
	}
}
