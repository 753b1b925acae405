package registry

// Tool describes one entry on the home screen. The registry is static
// metadata only; each tool owns its own state and view.
type Tool struct {
	ID          string
	Name        string
	Description string
}

var tools = []Tool{
	{
		ID:          "timer",
		Name:        "Pomodoro Timer",
		Description: "Interval timer with work and break phases that survives restarts.",
	},
	{
		ID:          "passgen",
		Name:        "Password Generator",
		Description: "Random passwords with configurable length and character classes.",
	},
	{
		ID:          "textstat",
		Name:        "Word Counter",
		Description: "Characters, words, sentences and estimated reading time.",
	},
	{
		ID:          "stego",
		Name:        "Invisible Ink",
		Description: "Hide a message inside ordinary text using zero-width characters.",
	},
	{
		ID:          "diffview",
		Name:        "Diff Viewer",
		Description: "Unified diff and similarity ratio between two texts.",
	},
	{
		ID:          "mdpreview",
		Name:        "Markdown Previewer",
		Description: "Live markdown preview with HTML export.",
	},
}

// Tools lists every registered tool in home-screen order.
func Tools() []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// Lookup finds a tool by ID.
func Lookup(id string) (Tool, bool) {
	for _, tool := range tools {
		if tool.ID == id {
			return tool, true
		}
	}
	return Tool{}, false
}
