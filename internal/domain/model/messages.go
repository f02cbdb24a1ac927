package model

import (
	"fmt"
	"reflect"
	"time"
)

func failureMessage(def *Definition, messages map[string]string, attr string, r rule, value any) string {
	if msg, ok := messages[attr+"."+r.tag]; ok {
		return msg
	}

	label := def.Label(attr)
	switch r.tag {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "min":
		if isString(value) {
			return fmt.Sprintf("The %s must be at least %s characters.", label, r.param)
		}
		return fmt.Sprintf("The %s must be at least %s.", label, r.param)
	case "max":
		if isString(value) {
			return fmt.Sprintf("The %s may not be greater than %s characters.", label, r.param)
		}
		return fmt.Sprintf("The %s may not be greater than %s.", label, r.param)
	case "lte":
		if _, ok := value.(time.Time); ok && r.param == "" {
			return fmt.Sprintf("The %s must be a date before or equal to now.", label)
		}
		return fmt.Sprintf("The %s must be less than or equal to %s.", label, r.param)
	case tagLteField:
		return fmt.Sprintf("The %s must be a date before or equal to %s.", label, def.Label(r.param))
	case tagGteField:
		return fmt.Sprintf("The %s must be a date after or equal to %s.", label, def.Label(r.param))
	case tagExists:
		return fmt.Sprintf("The selected %s is invalid.", label)
	case tagUnique:
		return fmt.Sprintf("The %s has already been taken.", label)
	case "alpha":
		return fmt.Sprintf("The %s may only contain letters.", label)
	case tagBoolean:
		return fmt.Sprintf("The %s field must be true or false.", label)
	default:
		return fmt.Sprintf("The %s is invalid.", label)
	}
}

func isString(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.String
}
