package profile

import (
	"regexp"
	"unicode/utf8"

	"github.com/louisbranch/profile.space/internal/platform/i18n"
)

// Schemas bundles the three validation rule sets for one locale.
//
// Full covers the stored record (id included), Submission covers the
// user-submitted form fields, and Client is the immediate-feedback subset
// that reports the single most relevant message per field.
//
// Error messages are resolved from the locale dictionary when the schemas
// are built, so schemas are rebuilt per request rather than cached across
// locales. Construction is a handful of slice literals; the locality of rule
// and message is worth the rebuild.
type Schemas struct {
	Full       Schema
	Submission Schema
	Client     Schema
}

// Schema validates a value set against an ordered rule table.
type Schema struct {
	rules []fieldRule
}

// Result reports a validation pass outcome.
type Result struct {
	OK     bool
	Errors FieldErrors
}

type ruleKind int

const (
	ruleRequired ruleKind = iota
	ruleMinLength
	ruleMaxLength
	ruleEmail
)

type fieldRule struct {
	field    string
	kind     ruleKind
	length   int
	optional bool
	message  string
}

// addressPattern matches the local@domain.tld shape: non-empty local part, a
// dotted domain, and a two-plus character final label, with no whitespace.
var addressPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// NewSchemas builds the full, submission, and client schemas for a locale.
func NewSchemas(locale i18n.Locale) Schemas {
	messages := i18n.DictionaryFor(locale).Validation

	name := []fieldRule{
		{field: FieldName, kind: ruleRequired, message: messages.NameRequired},
		{field: FieldName, kind: ruleMinLength, length: 2, message: messages.NameMinLength},
		{field: FieldName, kind: ruleMaxLength, length: 50, message: messages.NameMaxLength},
	}
	email := []fieldRule{
		{field: FieldEmail, kind: ruleRequired, message: messages.EmailRequired},
		{field: FieldEmail, kind: ruleEmail, message: messages.EmailInvalid},
	}
	bio := []fieldRule{
		{field: FieldBio, kind: ruleMaxLength, length: 200, optional: true, message: messages.BioMaxLength},
	}
	id := []fieldRule{
		{field: FieldID, kind: ruleRequired, message: messages.IDRequired},
	}

	shared := append(append(append([]fieldRule{}, name...), email...), bio...)
	return Schemas{
		Full:       Schema{rules: append(append([]fieldRule{}, id...), shared...)},
		Submission: Schema{rules: shared},
		Client:     Schema{rules: shared},
	}
}

// Validate runs the rule table over the values.
//
// Rules run in declaration order and a field stops at its first failure, so
// the most specific applicable message (required before too-short) is the one
// reported. The returned error map is complete for this pass; callers replace
// any prior map with it.
func (s Schema) Validate(values Values) Result {
	errors := FieldErrors{}
	failed := map[string]bool{}
	for _, rule := range s.rules {
		if failed[rule.field] {
			continue
		}
		value := values.field(rule.field)
		if value == "" && rule.optional {
			continue
		}
		if !rule.check(value) {
			errors[rule.field] = append(errors[rule.field], rule.message)
			failed[rule.field] = true
		}
	}
	if len(errors) == 0 {
		return Result{OK: true, Errors: FieldErrors{}}
	}
	return Result{OK: false, Errors: errors}
}

func (r fieldRule) check(value string) bool {
	switch r.kind {
	case ruleRequired:
		return value != ""
	case ruleMinLength:
		return utf8.RuneCountInString(value) >= r.length
	case ruleMaxLength:
		return utf8.RuneCountInString(value) <= r.length
	case ruleEmail:
		return addressPattern.MatchString(value)
	default:
		return true
	}
}
