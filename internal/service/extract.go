package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/pageza/chef-ia/backend/internal/types"
)

// Recipe field names expected in a model reply.
const (
	FieldTitle        = "title"
	FieldInstructions = "instructions"
)

// ExtractionStatus classifies the outcome of ExtractRecipe.
type ExtractionStatus int

const (
	// ExtractionOK means both fields were recovered.
	ExtractionOK ExtractionStatus = iota
	// ExtractionMissingFields means JSON was recovered but at least one field
	// is absent, empty or of the wrong type.
	ExtractionMissingFields
	// ExtractionUnparsable means no JSON value could be recovered.
	ExtractionUnparsable
)

func (s ExtractionStatus) String() string {
	switch s {
	case ExtractionOK:
		return "ok"
	case ExtractionMissingFields:
		return "missing_fields"
	case ExtractionUnparsable:
		return "unparsable"
	default:
		return fmt.Sprintf("ExtractionStatus(%d)", int(s))
	}
}

// Extraction is the result of recovering a recipe from a model reply.
type Extraction struct {
	Status ExtractionStatus
	// Recipe holds whatever fields were found, possibly partially empty.
	Recipe  types.RecipeResponse
	Missing []string
	// Reason describes why the reply was unparsable.
	Reason string
}

// ExtractRecipe recovers a recipe from raw reply text. A reply without a
// '{' ... '}' pair is unparsable. Otherwise the whole text is parsed first and,
// if that fails, the span from the first '{' to the last '}'. With repair set,
// a span that is not valid JSON gets one pass through jsonrepair before giving
// up.
func ExtractRecipe(reply string, repair bool) Extraction {
	text := strings.TrimSpace(reply)

	span, ok := outerBraceSpan(text)
	if !ok {
		return Extraction{Status: ExtractionUnparsable, Reason: "no JSON object found"}
	}

	var direct any
	if err := json.Unmarshal([]byte(text), &direct); err == nil {
		return fromValue(direct)
	}

	value, err := parseSpan(span, repair)
	if err != nil {
		return Extraction{Status: ExtractionUnparsable, Reason: fmt.Sprintf("invalid JSON object: %v", err)}
	}
	return fromValue(value)
}

// outerBraceSpan returns text from the first '{' through the last '}'.
func outerBraceSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

func parseSpan(span string, repair bool) (any, error) {
	var value any
	err := json.Unmarshal([]byte(span), &value)
	if err == nil || !repair {
		return value, err
	}

	repaired, repairErr := jsonrepair.JSONRepair(span)
	if repairErr != nil {
		return nil, fmt.Errorf("%w (repair failed: %v)", err, repairErr)
	}
	if err := json.Unmarshal([]byte(repaired), &value); err != nil {
		return nil, err
	}
	return value, nil
}

// fromValue validates a decoded JSON value. Anything other than an object
// counts as missing both fields.
func fromValue(v any) Extraction {
	obj, ok := v.(map[string]any)
	if !ok {
		return Extraction{
			Status:  ExtractionMissingFields,
			Missing: []string{FieldTitle, FieldInstructions},
		}
	}

	ex := Extraction{
		Recipe: types.RecipeResponse{
			Title:        textField(obj[FieldTitle]),
			Instructions: stepsField(obj[FieldInstructions]),
		},
	}
	if ex.Recipe.Title == "" {
		ex.Missing = append(ex.Missing, FieldTitle)
	}
	if ex.Recipe.Instructions == "" {
		ex.Missing = append(ex.Missing, FieldInstructions)
	}
	if len(ex.Missing) > 0 {
		ex.Status = ExtractionMissingFields
	}
	return ex
}

func textField(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// stepsField accepts a string or a list of strings, joined one per line.
func stepsField(v any) string {
	list, ok := v.([]any)
	if !ok {
		return textField(v)
	}
	steps := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return ""
		}
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, s)
		}
	}
	return strings.Join(steps, "\n")
}
