package wordpress_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/internal/wordpress"
)

var _ = Describe("Converter", func() {
	It("converts post HTML to markdown", func() {
		c := wordpress.NewConverter()
		out, err := c.Convert("<p>Hello <strong>world</strong></p>\n\n\n\n<p>Bye</p>")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Hello **world**\n\nBye"))
	})

	It("renders a post with its title", func() {
		c := wordpress.NewConverter()
		out, err := c.PostMarkdown(wordpress.Post{Title: "Launch", Content: "<p>Body</p>"})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("## Launch\n\nBody"))
	})
})
