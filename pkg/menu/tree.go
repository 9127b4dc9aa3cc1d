package menu

import (
	"encoding/json"
	"net/http"
)

// Node is a JSON-serializable snapshot of a menu or one of its items.
type Node struct {
	// Label is the rendered item text. Empty for the root.
	Label string `json:"label,omitempty"`

	// Kind of the item. Empty for the root.
	Kind Kind `json:"kind,omitempty"`

	// Title is the header of a menu node.
	Title string `json:"title,omitempty"`

	// Items are the entries of a menu node, in display order.
	Items []Node `json:"items,omitempty"`
}

// Tree returns a snapshot of the menu hierarchy rooted at m.
// Actions are not serialized.
func (m *Menu) Tree() Node {
	n := Node{Title: m.title}

	for _, item := range m.items {
		child := Node{Label: item.Label(), Kind: item.Kind()}
		if sub, ok := item.(*SubMenuItem); ok && sub.Menu != nil {
			t := sub.Menu.Tree()
			child.Title = t.Title
			child.Items = t.Items
		}
		n.Items = append(n.Items, child)
	}

	return n
}

// Handler returns an HTTP handler that responds with the menu tree as JSON.
// Items must not be added while it is serving.
func (m *Menu) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.log().Debug("handling menu request",
			"method", r.Method,
			"url", r.URL.Path,
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(m.Tree()); err != nil {
			m.log().Error("failed to encode menu", "error", err)
			return
		}
	})
}
