package snapshot

import (
	"github.com/alexanderramin/codetree/internal/domain"
	"github.com/alexanderramin/codetree/internal/tree"
	"github.com/google/uuid"
)

// Convert turns a validated snapshot into a domain tree. Nodes without an id
// get a fresh UUID. If any node lacks a code, all codes are recomputed from
// position. Call ValidateRecord first; Convert assumes the record is valid.
func Convert(rec *NodeRecord) *domain.Node {
	complete := true
	root := convertNode(rec, &complete)
	if !complete {
		root = tree.RecomputeCodes(root)
	}
	return root
}

func convertNode(r *NodeRecord, complete *bool) *domain.Node {
	id := r.ID
	if id == "" {
		id = uuid.New().String()
	}
	n := &domain.Node{
		ID:       id,
		Name:     r.Name,
		Type:     r.Type,
		Code:     recordCode(r),
		HierID:   r.HierID,
		ParentID: r.ParentID,
		Depth:    r.Depth,
	}
	if n.Code == "" {
		*complete = false
	}
	if len(r.Children) > 0 {
		n.Children = make([]*domain.Node, 0, len(r.Children))
		for _, c := range r.Children {
			n.Children = append(n.Children, convertNode(c, complete))
		}
	}
	return n
}

// FromDomain turns a domain tree back into its snapshot form.
func FromDomain(n *domain.Node) *NodeRecord {
	if n == nil {
		return nil
	}
	code := n.Code
	rec := &NodeRecord{
		ID:       n.ID,
		Name:     n.Name,
		Type:     n.Type,
		HierID:   n.HierID,
		Depth:    n.Depth,
		NodeKey:  &code,
		ParentID: n.ParentID,
	}
	for _, c := range n.Children {
		rec.Children = append(rec.Children, FromDomain(c))
	}
	return rec
}
