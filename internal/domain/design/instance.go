package design

// ComponentInstance places a definition in the tree. ComponentID is a weak
// lookup reference; ParentID is bookkeeping and never drives traversal.
type ComponentInstance struct {
	ID             string
	ComponentID    string
	InstanceStyles Style
	Properties     Properties
	Children       []ComponentInstance
	ParentID       string
}

// HasOverrides reports whether the instance carries any style or property override.
func (i ComponentInstance) HasOverrides() bool {
	for _, v := range i.InstanceStyles {
		if v != "" {
			return true
		}
	}
	return len(i.Properties) > 0
}

// Clone returns a deep copy including all descendants.
func (i ComponentInstance) Clone() ComponentInstance {
	clone := ComponentInstance{
		ID:             i.ID,
		ComponentID:    i.ComponentID,
		InstanceStyles: i.InstanceStyles.Clone(),
		Properties:     i.Properties.Clone(),
		ParentID:       i.ParentID,
	}
	if i.Children != nil {
		clone.Children = make([]ComponentInstance, len(i.Children))
		for idx, child := range i.Children {
			clone.Children[idx] = child.Clone()
		}
	}
	return clone
}

// FindInstance performs a depth-first search across the forest and returns
// the first match. The returned pointer aliases the tree and must be treated
// as read-only.
func FindInstance(roots []ComponentInstance, id string) (*ComponentInstance, bool) {
	for idx := range roots {
		if roots[idx].ID == id {
			return &roots[idx], true
		}
		if found, ok := FindInstance(roots[idx].Children, id); ok {
			return found, true
		}
	}
	return nil, false
}

// UpdateInTree returns a new forest in which the node matching id has been
// replaced by updater(node). Only the nodes on the root-to-target path are
// copied; every other subtree is shared with the input. The boolean is false
// when id is absent, in which case roots is returned unchanged.
func UpdateInTree(roots []ComponentInstance, id string, updater func(ComponentInstance) ComponentInstance) ([]ComponentInstance, bool) {
	for idx := range roots {
		if roots[idx].ID == id {
			next := make([]ComponentInstance, len(roots))
			copy(next, roots)
			next[idx] = updater(roots[idx])
			return next, true
		}
		if len(roots[idx].Children) == 0 {
			continue
		}
		children, ok := UpdateInTree(roots[idx].Children, id, updater)
		if !ok {
			continue
		}
		next := make([]ComponentInstance, len(roots))
		copy(next, roots)
		node := roots[idx]
		node.Children = children
		next[idx] = node
		return next, true
	}
	return roots, false
}

// WalkFunc visits one node. Returning false stops descent into its children.
type WalkFunc func(instance ComponentInstance, depth int, parentID string) bool

// WalkInstances visits the forest in pre-order.
func WalkInstances(roots []ComponentInstance, fn WalkFunc) {
	walkInstances(roots, 0, "", fn)
}

func walkInstances(nodes []ComponentInstance, depth int, parentID string, fn WalkFunc) {
	for _, node := range nodes {
		if !fn(node, depth, parentID) {
			continue
		}
		walkInstances(node.Children, depth+1, node.ID, fn)
	}
}

// InstancePath returns the ids from the root down to id, or nil when absent.
func InstancePath(roots []ComponentInstance, id string) []string {
	for _, node := range roots {
		if node.ID == id {
			return []string{node.ID}
		}
		if sub := InstancePath(node.Children, id); sub != nil {
			return append([]string{node.ID}, sub...)
		}
	}
	return nil
}

// InstanceIDs lists every instance id in pre-order.
func InstanceIDs(roots []ComponentInstance) []string {
	ids := make([]string, 0)
	WalkInstances(roots, func(instance ComponentInstance, _ int, _ string) bool {
		ids = append(ids, instance.ID)
		return true
	})
	return ids
}
