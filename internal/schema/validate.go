// Package schema validates catalogs and answer documents before scoring.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dshills/fitcheck/internal/answers"
	"github.com/dshills/fitcheck/internal/catalog"
	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// answersDocumentSchema describes an answers file after YAML decoding.
const answersDocumentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "catalog": {"type": "string", "minLength": 1},
    "answers": {
      "type": "object",
      "additionalProperties": {"type": "integer"}
    }
  },
  "required": ["answers"],
  "additionalProperties": false
}`

var (
	answersSchema = gojsonschema.NewStringLoader(answersDocumentSchema)
	validate      = newValidator()
)

// newValidator reports fields by their YAML names so paths match the catalog file.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateAnswersDocument checks a decoded answers document against the
// answers file JSON Schema.
func ValidateAnswersDocument(doc any) []ValidationError {
	result, err := gojsonschema.Validate(answersSchema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return []ValidationError{{"(root)", fmt.Sprintf("cannot validate document: %v", err)}}
	}
	if result.Valid() {
		return nil
	}
	var errs []ValidationError
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		errs = append(errs, ValidationError{field, desc.Description()})
	}
	return errs
}

// ValidateCatalog checks catalog structure: required fields, known
// question types, unique IDs and answerable options.
func ValidateCatalog(c *catalog.Catalog) []ValidationError {
	var errs []ValidationError

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []ValidationError{{"(root)", err.Error()}}
		}
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{fieldPath(fe.Namespace()), describe(fe)})
		}
	}

	ids := make(map[string]bool)
	for i, q := range c.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if q.ID != "" {
			if ids[q.ID] {
				errs = append(errs, ValidationError{prefix + ".id", fmt.Sprintf("duplicate ID: %q", q.ID)})
			}
			ids[q.ID] = true
		}

		switch q.Type {
		case catalog.TypeLikert:
			if len(q.Options) > 0 {
				errs = append(errs, ValidationError{prefix + ".options", "likert questions take no options"})
			}
			if q.CorrectAnswer != nil {
				errs = append(errs, ValidationError{prefix + ".correct_answer", "only aptitude questions have a correct answer"})
			}
		case catalog.TypeMultipleChoice:
			if len(q.Options) < 2 {
				errs = append(errs, ValidationError{prefix + ".options", "at least two options required"})
			}
			if q.CorrectAnswer != nil {
				errs = append(errs, ValidationError{prefix + ".correct_answer", "only aptitude questions have a correct answer"})
			}
		case catalog.TypeAptitude:
			if len(q.Options) < 2 {
				errs = append(errs, ValidationError{prefix + ".options", "at least two options required"})
			}
			switch {
			case q.CorrectAnswer == nil:
				errs = append(errs, ValidationError{prefix + ".correct_answer", "required for aptitude questions"})
			case *q.CorrectAnswer < 0 || *q.CorrectAnswer >= len(q.Options):
				errs = append(errs, ValidationError{prefix + ".correct_answer", fmt.Sprintf("index %d outside %d options", *q.CorrectAnswer, len(q.Options))})
			}
		}
	}

	return errs
}

// ValidateAnswers checks recorded answers against the questions they
// reference. Scoring tolerates every problem reported here.
func ValidateAnswers(questions []catalog.Question, set answers.Set) []ValidationError {
	byID := make(map[string]catalog.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var errs []ValidationError
	for _, id := range set.IDs() {
		v, _ := set.Get(id)
		path := "answers." + id
		q, ok := byID[id]
		if !ok {
			errs = append(errs, ValidationError{path, "unknown question"})
			continue
		}
		switch q.Type {
		case catalog.TypeLikert:
			if v < catalog.LikertMin || v > catalog.LikertMax {
				errs = append(errs, ValidationError{path, fmt.Sprintf("likert answer %d outside %d-%d", v, catalog.LikertMin, catalog.LikertMax)})
			}
		default:
			if v < 0 || v >= len(q.Options) {
				errs = append(errs, ValidationError{path, fmt.Sprintf("option index %d outside %d options", v, len(q.Options))})
			}
		}
	}
	return errs
}

// fieldPath drops the root struct name: "Catalog.questions[2].type"
// becomes "questions[2].type".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("invalid: %q (want one of %s)", fe.Value(), fe.Param())
	case "min":
		return fmt.Sprintf("at least %s required", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
