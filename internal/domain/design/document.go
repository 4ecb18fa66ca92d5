package design

import (
	"github.com/samber/lo"
)

// Document is the root aggregate: the app definition plus the theme. Every
// mutation returns a new Document and leaves its receiver untouched, so a
// caller can detect change by comparing snapshots.
type Document struct {
	App   AppDefinition
	Theme ThemeSettings
}

// NewDocument builds an aggregate from its parts.
func NewDocument(app AppDefinition, theme ThemeSettings) Document {
	return Document{App: app, Theme: theme}
}

// Validate ensures the aggregate satisfies its structural invariants.
// Dangling component references are not a validation failure: they resolve
// to ComponentNotFound instead.
func (d Document) Validate() error {
	seenComponents := make(map[string]struct{}, len(d.App.Components))
	for _, component := range d.App.Components {
		if err := component.Validate(); err != nil {
			return err
		}
		if _, ok := seenComponents[component.ID]; ok {
			return newDuplicateError("component", component.ID)
		}
		seenComponents[component.ID] = struct{}{}
	}

	var treeErr *DomainError
	seenInstances := make(map[string]struct{})
	WalkInstances(d.App.Instances, func(instance ComponentInstance, _ int, _ string) bool {
		if treeErr != nil {
			return false
		}
		if instance.ID == "" {
			treeErr = newValidationError("component instance requires an id", map[string]interface{}{"component_id": instance.ComponentID})
			return false
		}
		if _, ok := seenInstances[instance.ID]; ok {
			treeErr = newDuplicateError("instance", instance.ID)
			return false
		}
		seenInstances[instance.ID] = struct{}{}
		for key := range instance.InstanceStyles {
			if !key.Valid() {
				treeErr = newValidationError("unknown style key", map[string]interface{}{"instance_id": instance.ID, "key": string(key)})
				return false
			}
		}
		return true
	})
	if treeErr != nil {
		return treeErr
	}
	return nil
}

// ComponentByID looks up a definition, reporting ComponentNotFound when absent.
func (d Document) ComponentByID(id string) (ComponentDefinition, error) {
	component, ok := d.App.Component(id)
	if !ok {
		return ComponentDefinition{}, newComponentNotFoundError(id)
	}
	return component, nil
}

// Instance looks up an instance anywhere in the tree.
func (d Document) Instance(id string) (ComponentInstance, error) {
	found, ok := FindInstance(d.App.Instances, id)
	if !ok {
		return ComponentInstance{}, newInstanceNotFoundError(id)
	}
	return *found, nil
}

// Resolve computes the effective style and properties of one instance from
// definition defaults and instance overrides. Theme fallback is not applied;
// see ResolveThemed.
func (d Document) Resolve(instanceID string) (Resolved, error) {
	instance, err := d.Instance(instanceID)
	if err != nil {
		return Resolved{}, err
	}
	return d.resolveInstance(instance)
}

// ResolveThemed is Resolve followed by the theme fallback pass.
func (d Document) ResolveThemed(instanceID string) (Resolved, error) {
	resolved, err := d.Resolve(instanceID)
	if err != nil {
		return resolved, err
	}
	resolved.Style = ApplyThemeFallback(resolved.Style, resolved.Definition.Type, d.Theme)
	return resolved, nil
}

func (d Document) resolveInstance(instance ComponentInstance) (Resolved, error) {
	definition, ok := d.App.Component(instance.ComponentID)
	if !ok {
		return Resolved{InstanceID: instance.ID}, newComponentNotFoundError(instance.ComponentID).WithContext(map[string]interface{}{
			"instance_id": instance.ID,
		})
	}
	return Resolved{
		InstanceID: instance.ID,
		Definition: definition,
		Style:      ResolveStyles(instance, definition),
		Properties: ResolveProperties(instance, definition),
	}, nil
}

// ResolveTree resolves the whole forest. A node whose definition is missing
// carries the error and its siblings and descendants still resolve.
func (d Document) ResolveTree(themed bool) []ResolvedNode {
	return d.resolveNodes(d.App.Instances, 0, "", themed)
}

func (d Document) resolveNodes(instances []ComponentInstance, depth int, parentID string, themed bool) []ResolvedNode {
	nodes := make([]ResolvedNode, 0, len(instances))
	for _, instance := range instances {
		resolved, err := d.resolveInstance(instance)
		if err == nil && themed {
			resolved.Style = ApplyThemeFallback(resolved.Style, resolved.Definition.Type, d.Theme)
		}
		nodes = append(nodes, ResolvedNode{
			Instance: instance,
			Depth:    depth,
			ParentID: parentID,
			Resolved: resolved,
			Err:      err,
			Children: d.resolveNodes(instance.Children, depth+1, instance.ID, themed),
		})
	}
	return nodes
}

// withInstances returns a copy of the document with a new forest.
func (d Document) withInstances(instances []ComponentInstance) Document {
	d.App = AppDefinition{Components: d.App.Components, Instances: instances}
	return d
}

// withComponents returns a copy of the document with a new catalogue.
func (d Document) withComponents(components []ComponentDefinition) Document {
	d.App = AppDefinition{Components: components, Instances: d.App.Instances}
	return d
}

func (d Document) updateInstance(id string, updater func(ComponentInstance) ComponentInstance) (Document, error) {
	instances, ok := UpdateInTree(d.App.Instances, id, updater)
	if !ok {
		return d, newInstanceNotFoundError(id)
	}
	return d.withInstances(instances), nil
}

// SetInstanceProperty sets or clears one property override. A nil value is
// the tombstone: the key is deleted and the definition default shows through.
func (d Document) SetInstanceProperty(instanceID, key string, value *PropertyValue) (Document, error) {
	return d.updateInstance(instanceID, func(instance ComponentInstance) ComponentInstance {
		properties := instance.Properties.Clone()
		if value == nil {
			delete(properties, key)
		} else {
			properties[key] = *value
		}
		instance.Properties = properties
		return instance
	})
}

// SetInstanceStyle sets or clears one style override. The empty string is
// the tombstone.
func (d Document) SetInstanceStyle(instanceID string, key StyleKey, value string) (Document, error) {
	if !key.Valid() {
		return d, newValidationError("unknown style key", map[string]interface{}{"key": string(key)})
	}
	return d.updateInstance(instanceID, func(instance ComponentInstance) ComponentInstance {
		styles := instance.InstanceStyles.Clone()
		if value == "" {
			delete(styles, key)
		} else {
			styles[key] = value
		}
		instance.InstanceStyles = styles
		return instance
	})
}

// ResetInstanceProperty removes a single property override.
func (d Document) ResetInstanceProperty(instanceID, key string) (Document, error) {
	return d.SetInstanceProperty(instanceID, key, Unset)
}

// ResetInstanceStyle removes a single style override.
func (d Document) ResetInstanceStyle(instanceID string, key StyleKey) (Document, error) {
	return d.SetInstanceStyle(instanceID, key, "")
}

// ResetAllOverrides discards every override on one instance. Children keep
// their own overrides.
func (d Document) ResetAllOverrides(instanceID string) (Document, error) {
	return d.updateInstance(instanceID, clearOverrides)
}

func clearOverrides(instance ComponentInstance) ComponentInstance {
	instance.Properties = Properties{}
	instance.InstanceStyles = Style{}
	return instance
}

// PushOverridesToComponent promotes an instance's overrides into its
// definition, then clears them from the instance. Every instance of the
// definition that does not override the same keys changes appearance.
func (d Document) PushOverridesToComponent(instanceID string) (Document, error) {
	instance, err := d.Instance(instanceID)
	if err != nil {
		return d, err
	}
	index := d.App.componentIndex(instance.ComponentID)
	if index < 0 {
		return d, newComponentNotFoundError(instance.ComponentID).WithContext(map[string]interface{}{"instance_id": instanceID})
	}

	definition := d.App.Components[index].Clone()
	definition.DefaultStyles = MergeStyles(definition.DefaultStyles, instance.InstanceStyles)
	for key, value := range instance.Properties {
		definition.Properties[key] = value
	}

	next := d.withComponents(d.App.replaceComponent(index, definition))
	return next.updateInstance(instanceID, clearOverrides)
}

// UpdateComponentStyle replaces one default style of a definition. An empty
// value removes the default. Instances that do not override key observe the
// change on their next resolution.
func (d Document) UpdateComponentStyle(componentID string, key StyleKey, value string) (Document, error) {
	if !key.Valid() {
		return d, newValidationError("unknown style key", map[string]interface{}{"key": string(key)})
	}
	return d.updateComponent(componentID, func(def ComponentDefinition) ComponentDefinition {
		if value == "" {
			delete(def.DefaultStyles, key)
		} else {
			def.DefaultStyles[key] = value
		}
		return def
	})
}

// UpdateComponentProperty replaces one default property of a definition.
func (d Document) UpdateComponentProperty(componentID, key string, value PropertyValue) (Document, error) {
	return d.updateComponent(componentID, func(def ComponentDefinition) ComponentDefinition {
		def.Properties[key] = value
		return def
	})
}

// UpdateComponentLabel renames a definition.
func (d Document) UpdateComponentLabel(componentID, label string) (Document, error) {
	return d.updateComponent(componentID, func(def ComponentDefinition) ComponentDefinition {
		def.Label = label
		return def
	})
}

func (d Document) updateComponent(componentID string, updater func(ComponentDefinition) ComponentDefinition) (Document, error) {
	index := d.App.componentIndex(componentID)
	if index < 0 {
		return d, newComponentNotFoundError(componentID)
	}
	updated := updater(d.App.Components[index].Clone())
	return d.withComponents(d.App.replaceComponent(index, updated)), nil
}

// ThemeChange describes the outcome of a theme update.
type ThemeChange struct {
	Key      ThemeKey
	OldValue string
	NewValue string
	Rebound  []string
}

// UpdateThemeSetting sets one theme slot and rebinds definitions whose
// backgroundColor or color literally equals the slot's previous value.
// Binding is by value equality, so a definition that matches the old value
// by coincidence is rewritten too. An empty value removes the bound defaults,
// as UpdateComponentStyle does.
func (d Document) UpdateThemeSetting(key ThemeKey, value string) (Document, ThemeChange, error) {
	oldValue, ok := d.Theme.Get(key)
	if !ok {
		return d, ThemeChange{}, newValidationError("unknown theme key", map[string]interface{}{"key": string(key)})
	}
	theme, err := d.Theme.With(key, value)
	if err != nil {
		return d, ThemeChange{}, err
	}

	change := ThemeChange{Key: key, OldValue: oldValue, NewValue: value}
	components := make([]ComponentDefinition, len(d.App.Components))
	for i, component := range d.App.Components {
		components[i] = component
		if oldValue == "" {
			continue
		}
		bound := lo.Filter([]StyleKey{StyleBackgroundColor, StyleColor}, func(styleKey StyleKey, _ int) bool {
			return component.DefaultStyles[styleKey] == oldValue
		})
		if len(bound) == 0 {
			continue
		}
		rebound := component.Clone()
		for _, styleKey := range bound {
			if value == "" {
				delete(rebound.DefaultStyles, styleKey)
				continue
			}
			rebound.DefaultStyles[styleKey] = value
		}
		components[i] = rebound
		change.Rebound = append(change.Rebound, component.ID)
	}

	next := d.withComponents(components)
	next.Theme = theme
	return next, change, nil
}

// Overrides lists the keys an instance overrides.
type Overrides struct {
	Styles     []StyleKey
	Properties []string
	// Orphaned holds instance property keys the definition does not declare;
	// they are stored but never surfaced by resolution.
	Orphaned []string
}

// Empty reports whether nothing is overridden.
func (o Overrides) Empty() bool {
	return len(o.Styles) == 0 && len(o.Properties) == 0 && len(o.Orphaned) == 0
}

// OverrideSummary reports which keys of an instance are overridden.
func (d Document) OverrideSummary(instanceID string) (Overrides, error) {
	instance, err := d.Instance(instanceID)
	if err != nil {
		return Overrides{}, err
	}
	definition, err := d.ComponentByID(instance.ComponentID)
	if err != nil {
		return Overrides{}, err
	}

	summary := Overrides{}
	for _, key := range instance.InstanceStyles.Keys() {
		if _, ok := instance.InstanceStyles.Get(key); ok {
			summary.Styles = append(summary.Styles, key)
		}
	}
	for _, key := range instance.Properties.Keys() {
		if _, declared := definition.Properties[key]; declared {
			summary.Properties = append(summary.Properties, key)
		} else {
			summary.Orphaned = append(summary.Orphaned, key)
		}
	}
	return summary, nil
}

// InstancesOf lists the ids of every instance referencing componentID.
func (d Document) InstancesOf(componentID string) []string {
	ids := make([]string, 0)
	WalkInstances(d.App.Instances, func(instance ComponentInstance, _ int, _ string) bool {
		if instance.ComponentID == componentID {
			ids = append(ids, instance.ID)
		}
		return true
	})
	return ids
}
