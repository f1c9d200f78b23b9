package inspect

import "testing"

func TestRender(t *testing.T) {
	tree := &Node{
		Label: "obj",
		Value: "{1 hi}",
		Children: []*Node{
			{Label: "A", Value: "1"},
			{
				Label: "Sub",
				Children: []*Node{
					{Value: "leaf"},
				},
			},
		},
	}

	want := "obj = {1 hi}\n" +
		"  A = 1\n" +
		"  Sub\n" +
		"    leaf\n"
	if got := Render(tree); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderValueOnly(t *testing.T) {
	if got := Render(&Node{Value: "42"}); got != "42\n" {
		t.Errorf("Render() = %q, want %q", got, "42\n")
	}
}

func TestRenderBuiltTree(t *testing.T) {
	tree := Create([]int{1, 2}, "nums")
	want := "nums = <enumerable Count: 2>\n" +
		"  1\n" +
		"  2\n"
	if got := Render(tree); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}
