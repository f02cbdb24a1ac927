package model

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
)

// Rule tags resolved by the Validator itself rather than the validator library.
const (
	tagLteField = "ltefield"
	tagGteField = "gtefield"
	tagExists   = "exists"
	tagUnique   = "unique"
	tagBoolean  = "boolean"
)

// crossFieldTags maps attribute comparison tags to the validator tags that
// compare a value against a second, explicitly supplied value.
var crossFieldTags = map[string]string{
	tagLteField: "ltecsfield",
	tagGteField: "gtecsfield",
}

// References answers existence queries for the exists and unique rules.
type References interface {
	Exists(ctx context.Context, table, column string, value any) (bool, error)
}

// Validator runs Definition rules against entity attributes.
type Validator struct {
	validate *validator.Validate
	refs     References
}

// NewValidator creates a Validator. refs may be nil when no entity uses the
// exists or unique rules.
func NewValidator(refs References) *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		refs:     refs,
	}
}

// Validate checks every rule of the entity. With isDelete set the deletion
// rules and messages are used instead. Failures are returned as a
// *domain.ValidationError; errors raised while evaluating a rule (e.g. a
// failed reference lookup) are returned as-is.
func (v *Validator) Validate(ctx context.Context, e Entity, isDelete bool) error {
	def := e.Definition()
	rules, messages := def.Rules, def.Messages
	if isDelete {
		rules, messages = def.DeletionRules, def.DeletionMessages
	}
	return v.run(ctx, def, e.Attributes(), rules, messages)
}

// ValidateChanges checks only the rules of attributes that are dirty, so an
// unmodified entity always passes.
func (v *Validator) ValidateChanges(ctx context.Context, e Entity) error {
	def := e.Definition()
	state := e.State()

	changed := make(Rules, len(def.Rules))
	for attr, expr := range def.Rules {
		if state.IsDirty(attr) {
			changed[attr] = expr
		}
	}
	return v.run(ctx, def, e.Attributes(), changed, def.Messages)
}

func (v *Validator) run(ctx context.Context, def *Definition, attrs map[string]any, rules Rules, messages map[string]string) error {
	if len(rules) == 0 {
		return nil
	}

	verr := &domain.ValidationError{}
	for _, attr := range slices.Sorted(maps.Keys(rules)) {
		value := attrs[attr]
		for _, r := range parseRules(rules[attr]) {
			ok, err := v.check(ctx, def, attrs, value, r)
			if err != nil {
				return err
			}
			if !ok {
				verr.Add(attr, r.String(), failureMessage(def, messages, attr, r, value))
				break
			}
		}
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

func (v *Validator) check(ctx context.Context, def *Definition, attrs map[string]any, value any, r rule) (bool, error) {
	switch r.tag {
	case tagLteField, tagGteField:
		return passed(v.validate.VarWithValueCtx(ctx, value, attrs[r.param], crossFieldTags[r.tag]))
	case tagExists, tagUnique:
		found, err := v.lookup(ctx, def, value, r)
		if err != nil {
			return false, err
		}
		return found == (r.tag == tagExists), nil
	case tagBoolean:
		return isBoolean(value), nil
	default:
		return passed(v.validate.VarCtx(ctx, value, r.String()))
	}
}

func (v *Validator) lookup(ctx context.Context, def *Definition, value any, r rule) (bool, error) {
	table, column, ok := strings.Cut(r.param, ".")
	if !ok || table == "" || column == "" {
		return false, domain.NewInvalidModelError(
			fmt.Sprintf("rule %q must reference <table>.<column>", r.String()), def.Name)
	}
	if v.refs == nil {
		return false, domain.NewInvalidOperationError(
			fmt.Sprintf("rule %q requires a reference checker", r.String()))
	}
	return v.refs.Exists(ctx, table, column, value)
}

// passed converts a validator result into a pass/fail flag. Only rule
// failures count as a failed check; anything else is a programming error.
func passed(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return false, nil
	}
	return false, err
}

// isBoolean accepts booleans and their usual string and integer forms.
func isBoolean(value any) bool {
	switch v := value.(type) {
	case bool:
		return true
	case string:
		_, err := strconv.ParseBool(v)
		return err == nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n := fmt.Sprint(v)
		return n == "0" || n == "1"
	default:
		return false
	}
}

type rule struct {
	tag   string
	param string
}

func (r rule) String() string {
	if r.param == "" {
		return r.tag
	}
	return r.tag + "=" + r.param
}

func parseRules(expr string) []rule {
	parts := strings.Split(expr, ",")
	rules := make([]rule, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tag, param, _ := strings.Cut(part, "=")
		rules = append(rules, rule{tag: tag, param: param})
	}
	return rules
}
