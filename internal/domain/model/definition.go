// Package model provides the lifecycle contract shared by every persisted
// entity: primary-key discipline, timestamp defaults, attribute validation,
// hooks and explicit change tracking.
//
// Entities embed Base, describe themselves with a Definition and expose their
// attributes through the Entity interface. The persistence layer drives a
// Lifecycle before each insert, update and delete:
//
//	if err := lifecycle.BeforeCreate(ctx, task); err != nil {
//	    return err
//	}
package model

import "strings"

const (
	defaultCreatedAt = "created_at"
	defaultUpdatedAt = "updated_at"
)

// PrimaryKey names the attribute(s) identifying an entity.
type PrimaryKey struct {
	names    []string
	compound bool
}

// Key declares a single-attribute primary key.
func Key(name string) PrimaryKey {
	return PrimaryKey{names: []string{name}}
}

// CompoundKey declares a primary key made of several attributes.
func CompoundKey(names ...string) PrimaryKey {
	return PrimaryKey{names: names, compound: true}
}

// Names returns the key attribute names in declaration order.
func (k PrimaryKey) Names() []string {
	return append([]string(nil), k.names...)
}

// IsCompound reports whether the key was declared with CompoundKey.
func (k PrimaryKey) IsCompound() bool {
	return k.compound
}

// Name returns the attribute name of a single-attribute key.
func (k PrimaryKey) Name() string {
	if k.compound || len(k.names) == 0 {
		return ""
	}
	return k.names[0]
}

func (k PrimaryKey) String() string {
	return strings.Join(k.names, ",")
}

// Rules maps attribute names to a comma separated rule expression, e.g.
// "required,min=5,max=4000". Besides the validator's built-in tags, the
// following are understood:
//
//	ltefield=<attr>        value <= another attribute
//	gtefield=<attr>        value >= another attribute
//	exists=<table>.<col>   a row with this value exists
//	unique=<table>.<col>   no row with this value exists
type Rules map[string]string

// Definition describes an entity type.
type Definition struct {
	Name         string
	PrimaryKey   PrimaryKey
	Incrementing bool
	Timestamps   bool

	// Empty attribute names fall back to created_at and updated_at.
	CreatedAtAttribute string
	UpdatedAtAttribute string

	Rules         Rules
	DeletionRules Rules

	// Custom messages keyed by "<attribute>.<tag>".
	Messages         map[string]string
	DeletionMessages map[string]string

	// Human readable attribute names used in validation messages.
	Labels map[string]string
}

// CreatedAt returns the creation timestamp attribute, or "" when the entity
// does not use timestamps.
func (d *Definition) CreatedAt() string {
	if !d.Timestamps {
		return ""
	}
	if d.CreatedAtAttribute == "" {
		return defaultCreatedAt
	}
	return d.CreatedAtAttribute
}

// UpdatedAt returns the modification timestamp attribute, or "" when the
// entity does not use timestamps.
func (d *Definition) UpdatedAt() string {
	if !d.Timestamps {
		return ""
	}
	if d.UpdatedAtAttribute == "" {
		return defaultUpdatedAt
	}
	return d.UpdatedAtAttribute
}

// Label returns the human readable name of an attribute.
func (d *Definition) Label(attribute string) string {
	if label, ok := d.Labels[attribute]; ok && label != "" {
		return label
	}
	return strings.ReplaceAll(attribute, "_", " ")
}
