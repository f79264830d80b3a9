package assistant

import (
	"fmt"
	"regexp"
	"strings"
)

const DefaultMaxPosts = 10

var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// ThreadInstructions asks for a JSON array of post strings.
func ThreadInstructions(platform string, maxPosts int) string {
	if maxPosts <= 0 {
		maxPosts = DefaultMaxPosts
	}
	target := "social media"
	if platform != "" {
		target = platform
	}
	return fmt.Sprintf("Write a %s thread of at most %d posts. "+
		"Respond only with a JSON array of strings, one string per post.", target, maxPosts)
}

// ParseThread reads posts from model output. It falls back to splitting on
// blank lines when no JSON array is present, and caps the result at maxPosts.
func ParseThread(output string, maxPosts int) ([]string, error) {
	if maxPosts <= 0 {
		maxPosts = DefaultMaxPosts
	}

	var posts []string
	if list, err := firstList[string](output, "posts"); err == nil {
		posts = list
	}
	if posts == nil {
		posts = blankLineRe.Split(strings.TrimSpace(output), -1)
	}

	out := make([]string, 0, len(posts))
	for _, p := range posts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
		if len(out) == maxPosts {
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrInvalidResponse
	}
	return out, nil
}

// ParseSummary returns the trimmed model output.
func ParseSummary(output string) (string, error) {
	s := strings.TrimSpace(output)
	if s == "" {
		return "", ErrInvalidResponse
	}
	return s, nil
}
