package registry

import "testing"

func TestToolsHaveUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, tool := range Tools() {
		if tool.ID == "" || tool.Name == "" || tool.Description == "" {
			t.Errorf("tool %+v has empty metadata", tool)
		}
		if seen[tool.ID] {
			t.Errorf("duplicate tool ID %q", tool.ID)
		}
		seen[tool.ID] = true
	}
}

func TestLookup(t *testing.T) {
	tool, ok := Lookup("timer")
	if !ok || tool.Name != "Pomodoro Timer" {
		t.Errorf("Lookup(timer) = (%+v, %v)", tool, ok)
	}
	if _, ok := Lookup("nope"); ok {
		t.Errorf("unknown ID should not resolve")
	}
}

func TestToolsReturnsACopy(t *testing.T) {
	first := Tools()
	first[0].Name = "mutated"
	if Tools()[0].Name == "mutated" {
		t.Errorf("Tools must not expose the backing slice")
	}
}
