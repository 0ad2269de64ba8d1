package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"notepad-ai/internal/domain"
	"notepad-ai/pkg/ids"
)

const (
	childDistance   = 150.0
	childAngleStep  = 60.0
	defaultNodeText = "New Idea"
	rootText        = "Central Idea"
	rootX, rootY    = 400.0, 300.0
)

// MindMapService edits the node tree stored in a mindmap note's content.
type MindMapService struct {
	notes *NoteService
}

func NewMindMapService(notes *NoteService) *MindMapService {
	return &MindMapService{notes: notes}
}

func (s *MindMapService) Nodes(ctx context.Context, noteID string) ([]*domain.MindMapNode, error) {
	note, err := s.notes.load(ctx, noteID, domain.NoteTypeMindMap)
	if err != nil {
		return nil, err
	}
	return parseNodes(note.Content), nil
}

// AddNode attaches a child to parentID. Children fan out around the parent
// in 60 degree steps at a fixed distance.
func (s *MindMapService) AddNode(ctx context.Context, noteID, parentID string) (*domain.MindMapNode, error) {
	var added *domain.MindMapNode
	err := s.edit(ctx, noteID, func(nodes []*domain.MindMapNode) ([]*domain.MindMapNode, error) {
		parent := findNode(nodes, parentID)
		if parent == nil {
			return nil, ErrNodeNotFound
		}

		angle := float64(len(parent.Children)) * childAngleStep * math.Pi / 180
		added = &domain.MindMapNode{
			ID:       ids.New(),
			Text:     defaultNodeText,
			X:        parent.X + math.Cos(angle)*childDistance,
			Y:        parent.Y + math.Sin(angle)*childDistance,
			Children: []string{},
			Parent:   parentID,
		}
		parent.Children = append(parent.Children, added.ID)
		return append(nodes, added), nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// UpdateNode renames and/or repositions a node.
func (s *MindMapService) UpdateNode(ctx context.Context, noteID, nodeID string, req *domain.UpdateNodeRequest) (*domain.MindMapNode, error) {
	var updated *domain.MindMapNode
	err := s.edit(ctx, noteID, func(nodes []*domain.MindMapNode) ([]*domain.MindMapNode, error) {
		node := findNode(nodes, nodeID)
		if node == nil {
			return nil, ErrNodeNotFound
		}
		if req.Text != nil {
			node.Text = *req.Text
		}
		if req.X != nil {
			node.X = *req.X
		}
		if req.Y != nil {
			node.Y = *req.Y
		}
		updated = node
		return nodes, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteNode removes a node and its descendants. The root is never removed.
func (s *MindMapService) DeleteNode(ctx context.Context, noteID, nodeID string) error {
	if nodeID == domain.RootNodeID {
		return ErrRootNode
	}

	return s.edit(ctx, noteID, func(nodes []*domain.MindMapNode) ([]*domain.MindMapNode, error) {
		node := findNode(nodes, nodeID)
		if node == nil {
			return nil, ErrNodeNotFound
		}
		return removeSubtree(nodes, node), nil
	})
}

func (s *MindMapService) edit(ctx context.Context, noteID string, fn func([]*domain.MindMapNode) ([]*domain.MindMapNode, error)) error {
	_, err := s.notes.mutate(ctx, noteID, domain.NoteTypeMindMap, func(n *domain.Note) error {
		nodes, err := fn(parseNodes(n.Content))
		if err != nil {
			return err
		}
		data, err := json.Marshal(nodes)
		if err != nil {
			return fmt.Errorf("failed to encode mind map: %w", err)
		}
		n.Content = string(data)
		return nil
	})
	return err
}

func newRootNode() *domain.MindMapNode {
	return &domain.MindMapNode{
		ID:       domain.RootNodeID,
		Text:     rootText,
		X:        rootX,
		Y:        rootY,
		Children: []string{},
	}
}

// parseNodes decodes stored content. Empty or malformed content, or content
// that lost its root, yields a map holding only the root node.
func parseNodes(content string) []*domain.MindMapNode {
	var nodes []*domain.MindMapNode
	if content != "" {
		if err := json.Unmarshal([]byte(content), &nodes); err != nil {
			nodes = nil
		}
	}

	out := make([]*domain.MindMapNode, 0, len(nodes)+1)
	for _, n := range nodes {
		if n == nil || n.ID == "" {
			continue
		}
		if n.Children == nil {
			n.Children = []string{}
		}
		out = append(out, n)
	}

	if findNode(out, domain.RootNodeID) == nil {
		out = append([]*domain.MindMapNode{newRootNode()}, out...)
	}
	return out
}

func findNode(nodes []*domain.MindMapNode, id string) *domain.MindMapNode {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func removeSubtree(nodes []*domain.MindMapNode, target *domain.MindMapNode) []*domain.MindMapNode {
	doomed := map[string]bool{target.ID: true}
	queue := []*domain.MindMapNode{target}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, childID := range n.Children {
			if doomed[childID] || childID == domain.RootNodeID {
				continue
			}
			doomed[childID] = true
			if child := findNode(nodes, childID); child != nil {
				queue = append(queue, child)
			}
		}
	}

	kept := make([]*domain.MindMapNode, 0, len(nodes))
	for _, n := range nodes {
		if doomed[n.ID] {
			continue
		}
		if n.ID == target.Parent {
			children := make([]string, 0, len(n.Children))
			for _, id := range n.Children {
				if id != target.ID {
					children = append(children, id)
				}
			}
			n.Children = children
		}
		kept = append(kept, n)
	}
	return kept
}
