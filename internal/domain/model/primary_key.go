package model

import "github.com/jsamuelsen11/go-task-tracker/internal/domain"

// CheckPrimaryKey verifies the shape of the declared primary key.
func CheckPrimaryKey(def *Definition) error {
	pk := def.PrimaryKey
	if !pk.IsCompound() {
		if pk.Name() == "" {
			return domain.NewInvalidModelError("primary key attribute name is empty", def.Name)
		}
		return nil
	}

	if def.Incrementing {
		return domain.NewInvalidModelError("auto-incrementing primary key is compound", def.Name)
	}
	names := pk.Names()
	if len(names) == 0 {
		return domain.NewInvalidModelError("compound primary key has no attributes", def.Name)
	}
	for _, name := range names {
		if name == "" {
			return domain.NewInvalidModelError("compound primary key has an attribute with an empty name", def.Name)
		}
	}
	return nil
}

// CheckPrimaryKeyBeforeCreate verifies the key shape and, for
// auto-incrementing entities, that the key was not assigned by the caller.
func CheckPrimaryKeyBeforeCreate(e Entity) error {
	def := e.Definition()
	if err := CheckPrimaryKey(def); err != nil {
		return err
	}
	if !def.Incrementing {
		return nil
	}

	name := def.PrimaryKey.Name()
	if e.State().IsDirty(name) {
		return domain.NewInvalidModelAttributeError(
			"value of the auto-incrementing primary key was set", name, def.Name)
	}
	return nil
}

// CheckPrimaryKeyBeforeUpdate verifies the key shape and that no key
// attribute differs from its persisted value.
func CheckPrimaryKeyBeforeUpdate(e Entity) error {
	def := e.Definition()
	if err := CheckPrimaryKey(def); err != nil {
		return err
	}

	for _, name := range def.PrimaryKey.Names() {
		if e.State().IsDirty(name) {
			return domain.NewInvalidModelAttributeError(
				"value of the primary key was changed", name, def.Name)
		}
	}
	return nil
}
