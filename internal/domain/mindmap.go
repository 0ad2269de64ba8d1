package domain

// RootNodeID identifies the node every mind map is rooted at.
const RootNodeID = "root"

type MindMapNode struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Children []string `json:"children"`
	Parent   string   `json:"parent,omitempty"`
}

type AddNodeRequest struct {
	ParentID string `json:"parent_id" validate:"required"`
}

type UpdateNodeRequest struct {
	Text *string  `json:"text" validate:"omitempty,max=200"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
}
