package model

// SuggestionType is one of the four proofreading categories.
type SuggestionType string

const (
	SuggestionGrammar     SuggestionType = "grammar"
	SuggestionSpelling    SuggestionType = "spelling"
	SuggestionPunctuation SuggestionType = "punctuation"
	SuggestionStyle       SuggestionType = "style"
)

// Suggestion is a single proofreading correction.
type Suggestion struct {
	Original    string         `json:"original" validate:"required" jsonschema:"required,description=Exact text fragment to replace"`
	Suggestion  string         `json:"suggestion" validate:"required" jsonschema:"required,description=Replacement text"`
	Type        SuggestionType `json:"type" jsonschema:"enum=grammar,enum=spelling,enum=punctuation,enum=style"`
	Explanation string         `json:"explanation,omitempty" jsonschema:"description=Short reason for the change"`
}
