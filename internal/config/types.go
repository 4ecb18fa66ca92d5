package config

// DocumentFile is the on-disk shape of a design document. The same structs
// decode from YAML, TOML and JSON.
type DocumentFile struct {
	Version    string          `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty" validate:"omitempty,semver" jsonschema:"description=Document format version (semver)."`
	Theme      *ThemeFile      `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Global theme. Missing slots take the built-in defaults."`
	Components []ComponentFile `yaml:"components" toml:"components" json:"components" validate:"required,min=1,dive" jsonschema:"description=Reusable component definitions."`
	Instances  []InstanceFile  `yaml:"instances" toml:"instances" json:"instances" validate:"omitempty,dive" jsonschema:"description=Root instances of the component tree."`
}

// ThemeFile mirrors design.ThemeSettings.
type ThemeFile struct {
	PrimaryAccent       string `yaml:"primaryAccent,omitempty" toml:"primaryAccent,omitempty" json:"primaryAccent,omitempty"`
	SecondaryAccent     string `yaml:"secondaryAccent,omitempty" toml:"secondaryAccent,omitempty" json:"secondaryAccent,omitempty"`
	PrimaryBackground   string `yaml:"primaryBackground,omitempty" toml:"primaryBackground,omitempty" json:"primaryBackground,omitempty"`
	SecondaryBackground string `yaml:"secondaryBackground,omitempty" toml:"secondaryBackground,omitempty" json:"secondaryBackground,omitempty"`
	PrimaryText         string `yaml:"primaryText,omitempty" toml:"primaryText,omitempty" json:"primaryText,omitempty"`
	SecondaryText       string `yaml:"secondaryText,omitempty" toml:"secondaryText,omitempty" json:"secondaryText,omitempty"`
	FontFamily          string `yaml:"fontFamily,omitempty" toml:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	BorderRadius        string `yaml:"borderRadius,omitempty" toml:"borderRadius,omitempty" json:"borderRadius,omitempty"`
	CardShadow          string `yaml:"cardShadow,omitempty" toml:"cardShadow,omitempty" json:"cardShadow,omitempty"`
	ButtonShadow        string `yaml:"buttonShadow,omitempty" toml:"buttonShadow,omitempty" json:"buttonShadow,omitempty"`
}

// ComponentFile is one definition entry.
type ComponentFile struct {
	ID            string                 `yaml:"id" toml:"id" json:"id" validate:"required,component_id"`
	Type          string                 `yaml:"type" toml:"type" json:"type" validate:"required,component_type" jsonschema:"enum=button,enum=text,enum=card,enum=container"`
	Label         string                 `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	DefaultStyles map[string]string      `yaml:"defaultStyles,omitempty" toml:"defaultStyles,omitempty" json:"defaultStyles,omitempty" validate:"omitempty,dive,keys,style_key,endkeys"`
	Properties    map[string]interface{} `yaml:"properties,omitempty" toml:"properties,omitempty" json:"properties,omitempty"`
}

// InstanceFile is one node of the instance tree. parentId is derived from
// nesting when omitted.
type InstanceFile struct {
	ID             string                 `yaml:"id" toml:"id" json:"id" validate:"required,component_id"`
	ComponentID    string                 `yaml:"componentId" toml:"componentId" json:"componentId" validate:"required"`
	ParentID       string                 `yaml:"parentId,omitempty" toml:"parentId,omitempty" json:"parentId,omitempty"`
	InstanceStyles map[string]string      `yaml:"instanceStyles,omitempty" toml:"instanceStyles,omitempty" json:"instanceStyles,omitempty" validate:"omitempty,dive,keys,style_key,endkeys"`
	Properties     map[string]interface{} `yaml:"properties,omitempty" toml:"properties,omitempty" json:"properties,omitempty"`
	Children       []InstanceFile         `yaml:"children,omitempty" toml:"children,omitempty" json:"children,omitempty" validate:"omitempty,dive"`
}
