package assistant_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/internal/assistant"
	"aihub.app/api/internal/model"
)

var _ = Describe("ExtractJSON", func() {
	It("prefers a fenced json block", func() {
		out, err := assistant.ExtractJSON("Sure!\n```json\n[{\"a\":1}]\n```\nand [1,2]")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(`[{"a":1}]`))
	})

	It("finds an array embedded in prose", func() {
		out, err := assistant.ExtractJSON(`Here you go: [{"a":[1]}, {"b":2}] thanks`)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(`[{"a":[1]}, {"b":2}]`))
	})

	It("finds an object embedded in prose", func() {
		out, err := assistant.ExtractJSON(`Result {"ok": true} end`)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(`{"ok": true}`))
	})

	It("skips bracketed prose before the document", func() {
		out, err := assistant.ExtractJSON(`I fixed [two] issues: [{"a":1}] (see above)`)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(`[{"a":1}]`))
	})

	It("fails on plain prose", func() {
		_, err := assistant.ExtractJSON("no json here")
		Expect(err).To(MatchError(assistant.ErrInvalidResponse))
	})
})

var _ = Describe("ParseSuggestions", func() {
	It("parses a bare array and drops invalid items", func() {
		out := "```json\n" + `[
			{"original":"teh","suggestion":"the","type":"spelling","explanation":"typo"},
			{"original":"","suggestion":"x","type":"grammar"},
			{"original":"a","type":"style"}
		]` + "\n```"

		suggestions, err := assistant.ParseSuggestions(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(suggestions).To(HaveLen(1))
		Expect(suggestions[0].Original).To(Equal("teh"))
		Expect(suggestions[0].Type).To(Equal(model.SuggestionSpelling))
	})

	It("accepts a wrapping object", func() {
		suggestions, err := assistant.ParseSuggestions(`{"suggestions":[{"original":"a","suggestion":"b","type":"Grammar"}]}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(suggestions).To(HaveLen(1))
		Expect(suggestions[0].Type).To(Equal(model.SuggestionGrammar))
	})

	It("treats a lone suggestion object as a list of one", func() {
		suggestions, err := assistant.ParseSuggestions(`{"original":"teh","suggestion":"the","type":"typo"}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(suggestions).To(HaveLen(1))
		Expect(suggestions[0].Suggestion).To(Equal("the"))
		Expect(suggestions[0].Type).To(Equal(model.SuggestionSpelling))
	})

	It("skips a bracketed note ahead of the array", func() {
		out := `Found [1] issue: [{"original":"its","suggestion":"it's","type":"grammar"}]`

		suggestions, err := assistant.ParseSuggestions(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(suggestions).To(HaveLen(1))
		Expect(suggestions[0].Original).To(Equal("its"))
	})

	It("rejects an unrelated object", func() {
		_, err := assistant.ParseSuggestions(`{"status":"ok"}`)
		Expect(err).To(MatchError(assistant.ErrInvalidResponse))
	})

	It("returns an empty list when nothing needs fixing", func() {
		suggestions, err := assistant.ParseSuggestions("[]")
		Expect(err).NotTo(HaveOccurred())
		Expect(suggestions).To(BeEmpty())
	})

	It("normalizes unrecognized types", func() {
		suggestions, err := assistant.ParseSuggestions(`[{"original":"a","suggestion":"b","type":"Ortografía"},{"original":"c","suggestion":"d","type":"something else"}]`)
		Expect(err).NotTo(HaveOccurred())
		Expect(suggestions).To(HaveLen(2))
		Expect(suggestions[0].Type).To(Equal(model.SuggestionSpelling))
		Expect(suggestions[1].Type).To(Equal(model.SuggestionStyle))
	})

	It("fails on unparseable output", func() {
		_, err := assistant.ParseSuggestions("I could not find any issues.")
		Expect(err).To(MatchError(assistant.ErrInvalidResponse))
	})
})

var _ = Describe("NormalizeType", func() {
	DescribeTable("maps free-form categories",
		func(in string, want model.SuggestionType) {
			Expect(assistant.NormalizeType(in)).To(Equal(want))
		},
		Entry("grammar", "grammar", model.SuggestionGrammar),
		Entry("gramática", "Gramática", model.SuggestionGrammar),
		Entry("spelling", "spelling mistake", model.SuggestionSpelling),
		Entry("ortografía", "ortografía", model.SuggestionSpelling),
		Entry("typo", "TYPO", model.SuggestionSpelling),
		Entry("puntuación", "puntuación", model.SuggestionPunctuation),
		Entry("punctuation", "Punctuation", model.SuggestionPunctuation),
		Entry("estilo", "estilo", model.SuggestionStyle),
		Entry("clarity", "clarity", model.SuggestionStyle),
		Entry("word choice", "word choice", model.SuggestionStyle),
		Entry("unknown", "tone", model.SuggestionStyle),
		Entry("empty", "", model.SuggestionStyle),
	)
})

var _ = Describe("ProofreadInstructions", func() {
	It("embeds the suggestion schema", func() {
		out := assistant.ProofreadInstructions()
		Expect(out).To(ContainSubstring(`"original"`))
		Expect(out).To(ContainSubstring(`"punctuation"`))
		Expect(out).To(ContainSubstring(`"array"`))
	})
})
