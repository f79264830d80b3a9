package wordpress

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

var excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

// Converter turns rendered post HTML into Markdown for prompts.
type Converter struct {
	converter *md.Converter
}

func NewConverter() *Converter {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return &Converter{converter: converter}
}

func (c *Converter) Convert(html string) (string, error) {
	out, err := c.converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert html: %w", err)
	}
	out = excessiveLinesRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out), nil
}

// PostMarkdown renders a post as a Markdown section headed by its title.
func (c *Converter) PostMarkdown(p Post) (string, error) {
	title, err := c.Convert(p.Title)
	if err != nil {
		return "", err
	}
	body, err := c.Convert(p.Content)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("## %s\n\n%s", title, body), nil
}
