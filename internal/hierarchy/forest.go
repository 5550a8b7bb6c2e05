package hierarchy

import (
	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
)

type TreeNode struct {
	ID       int64
	Name     string
	Children []*TreeNode
}

// Forest rebuilds every root's subtree. It uses an explicit stack, so depth is bounded
// only by memory, and it fails if any category cannot be reached from a root, which is
// what a parent cycle or a dangling parent reference looks like from the top down.
func (ix *Index) Forest() ([]*TreeNode, error) {
	roots := make([]*TreeNode, 0, len(ix.roots))
	stack := make([]*TreeNode, 0, len(ix.nodes))
	for _, id := range ix.roots {
		root := ix.newTreeNode(id)
		roots = append(roots, root)
		stack = append(stack, root)
	}

	seen := make(map[int64]struct{}, len(ix.nodes))
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, dup := seen[node.ID]; dup {
			return nil, apperror.GraphIntegrity("category %d reached twice while building tree", node.ID)
		}
		seen[node.ID] = struct{}{}

		for _, childID := range ix.children[node.ID] {
			child := ix.newTreeNode(childID)
			node.Children = append(node.Children, child)
			stack = append(stack, child)
		}
	}

	if unreachable := len(ix.nodes) - len(seen); unreachable > 0 {
		return nil, apperror.GraphIntegrity("%d categories are not reachable from any root", unreachable)
	}
	return roots, nil
}

func (ix *Index) newTreeNode(id int64) *TreeNode {
	return &TreeNode{
		ID:       id,
		Name:     ix.nodes[id].Name,
		Children: make([]*TreeNode, 0, len(ix.children[id])),
	}
}
