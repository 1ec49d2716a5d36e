package board

import "github.com/vango-dev/uikit/ui/key"

// Sample returns the built-in demo board with identity keys attached.
func Sample() *Board {
	b := &Board{
		ID:    "demo",
		Title: "Product launch",
		Columns: []*Column{
			{
				ID:    "todo",
				Title: "To do",
				Cards: []*Card{
					{ID: "copy", Title: "Write landing copy", Labels: []string{"marketing"}},
					{ID: "pricing", Title: "Decide pricing", Description: "Compare three tiers against competitors."},
				},
			},
			{
				ID:    "doing",
				Title: "In progress",
				Width: "24rem",
				Cards: []*Card{
					{ID: "signup", Title: "Signup flow", Labels: []string{"frontend", "auth"}},
				},
			},
			{
				ID:    "done",
				Title: "Done",
				Cards: []*Card{
					{ID: "domain", Title: "Register domain", Done: true},
				},
			},
			{
				ID:    "blocked",
				Title: "Blocked",
			},
		},
	}
	b.attachKeys(key.Keep)
	return b
}
