package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"aihub.app/api/common/llm"
	"aihub.app/api/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ProofreadInstructions tells the model which JSON shape to answer with.
func ProofreadInstructions() string {
	schema, err := json.MarshalIndent(llm.GenerateSchema[[]model.Suggestion](), "", "  ")
	if err != nil {
		// reflection over a static type cannot fail
		panic(err)
	}
	return fmt.Sprintf("Respond only with a JSON array of suggestions matching this JSON Schema. "+
		"Use an empty array when the text needs no changes.\n\n%s", schema)
}

// ParseSuggestions extracts suggestions from model output. A lone suggestion
// object counts as a list of one. Items missing the original or suggestion
// text are dropped. Types are normalized.
func ParseSuggestions(output string) ([]model.Suggestion, error) {
	items, err := firstList[model.Suggestion](output, "suggestions")
	if err != nil {
		return nil, err
	}

	out := make([]model.Suggestion, 0, len(items))
	for _, s := range items {
		if err := validate.Struct(s); err != nil {
			continue
		}
		s.Type = NormalizeType(string(s.Type))
		s.Explanation = strings.TrimSpace(s.Explanation)
		out = append(out, s)
	}
	return out, nil
}

// NormalizeType maps a free-form category onto the four known types by
// substring. Unrecognized values become style.
func NormalizeType(t string) model.SuggestionType {
	t = strings.ToLower(strings.TrimSpace(t))
	switch {
	case strings.Contains(t, "gram"):
		return model.SuggestionGrammar
	case containsAny(t, "spell", "orto", "typo"):
		return model.SuggestionSpelling
	case containsAny(t, "punt", "punc"):
		return model.SuggestionPunctuation
	default:
		// styl, estil, clar and word all land here too
		return model.SuggestionStyle
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
