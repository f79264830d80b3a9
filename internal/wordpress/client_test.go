package wordpress_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"aihub.app/api/internal/wordpress"
)

var _ = Describe("Client", func() {
	var (
		server  *httptest.Server
		handler http.HandlerFunc
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			handler(w, r)
		}))
		DeferCleanup(server.Close)
	})

	Context("with basic auth", func() {
		var client *wordpress.Client

		BeforeEach(func() {
			client = wordpress.NewBasicClient(server.URL+"/", "editor", "abcd efgh", server.Client())
		})

		It("searches posts through wp-json", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/wp-json/wp/v2/posts"))
				Expect(r.URL.Query().Get("search")).To(Equal("launch"))
				Expect(r.URL.Query().Get("page")).To(Equal("2"))
				Expect(r.URL.Query().Get("per_page")).To(Equal("5"))
				user, pass, ok := r.BasicAuth()
				Expect(ok).To(BeTrue())
				Expect(user).To(Equal("editor"))
				Expect(pass).To(Equal("abcd efgh"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[{"id":7,"date_gmt":"2025-03-01T10:00:00","link":"https://blog.example/launch","status":"publish","title":{"rendered":"Launch"},"excerpt":{"rendered":" <p>Soon</p> "}}]`))
			}

			posts, err := client.Search(ctx, "launch", 2, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(HaveLen(1))
			Expect(posts[0].ID).To(Equal(int64(7)))
			Expect(posts[0].Title).To(Equal("Launch"))
			Expect(posts[0].Excerpt).To(Equal("<p>Soon</p>"))
			Expect(posts[0].Date.Year()).To(Equal(2025))
		})

		It("returns an empty page past the end", func() {
			handler = func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"code":"rest_post_invalid_page_number","message":"The page number requested is larger than the number of pages available."}`))
			}

			posts, err := client.Search(ctx, "", 9, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).To(BeEmpty())
		})

		It("maps 401 to ErrUnauthorized", func() {
			handler = func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"code":"invalid_username","message":"Unknown username."}`))
			}

			_, err := client.SiteInfo(ctx)
			Expect(err).To(MatchError(wordpress.ErrUnauthorized))
		})

		It("reads site info from the index", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/wp-json/"))
				_, _ = w.Write([]byte(`{"name":"Acme Blog","description":"News","url":"https://blog.example"}`))
			}

			site, err := client.SiteInfo(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(site.Name).To(Equal("Acme Blog"))
			Expect(site.URL).To(Equal("https://blog.example"))
		})
	})

	Context("with a bearer token", func() {
		It("fetches a post through the public API", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/wp/v2/sites/98765/posts/7"))
				Expect(r.Header.Get("Authorization")).To(Equal("Bearer tok-1"))
				_, _ = w.Write([]byte(`{"id":7,"title":{"rendered":"Launch"},"content":{"rendered":"<p>Body</p>"}}`))
			}

			client := wordpress.NewBearerClient(ctx, server.URL, "98765", "tok-1", server.Client())
			post, err := client.GetPost(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Content).To(Equal("<p>Body</p>"))
		})
	})
})

var _ = Describe("NormalizeSiteURL", func() {
	DescribeTable("normalizes",
		func(in, want string) {
			got, err := wordpress.NormalizeSiteURL(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("adds scheme", "blog.example", "https://blog.example"),
		Entry("strips slash", "https://blog.example/", "https://blog.example"),
		Entry("keeps path", "http://example.com/blog/", "http://example.com/blog"),
	)

	It("rejects other schemes", func() {
		_, err := wordpress.NormalizeSiteURL("ftp://blog.example")
		Expect(err).To(HaveOccurred())
	})
})
