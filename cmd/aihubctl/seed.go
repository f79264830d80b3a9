package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aihub.app/api/internal/model"
)

type toolsFile struct {
	Tools []toolEntry `yaml:"tools"`
}

type toolEntry struct {
	Slug         string  `yaml:"slug"`
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	SystemPrompt string  `yaml:"system_prompt"`
	UserPrompt   string  `yaml:"user_prompt"`
	Provider     string  `yaml:"provider"`
	Model        string  `yaml:"model"`
	Temperature  float64 `yaml:"temperature"`
	TopP         float64 `yaml:"top_p"`
	MaxTokens    int32   `yaml:"max_tokens"`
}

func seedToolsCmd(timeout *time.Duration) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed-tools",
		Short: "Upsert the default tool catalogue from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening %s: %w", file, err)
			}
			defer f.Close()

			tools, err := parseTools(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", file, err)
			}

			return withEnv(*timeout, func(ctx context.Context, e *env) error {
				if err := e.services.Tools().SeedDefaults(ctx, tools); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d tools\n", len(tools))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "tools.yaml", "YAML file listing default tools")

	return cmd
}

// parseTools decodes a tools file. Unknown keys are rejected so typos do not
// silently fall back to zero values.
func parseTools(r io.Reader) ([]model.DefaultTool, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var tf toolsFile
	if err := dec.Decode(&tf); err != nil {
		return nil, err
	}
	if len(tf.Tools) == 0 {
		return nil, fmt.Errorf("no tools defined")
	}

	seen := make(map[string]bool, len(tf.Tools))
	tools := make([]model.DefaultTool, 0, len(tf.Tools))
	for _, t := range tf.Tools {
		if seen[t.Slug] {
			return nil, fmt.Errorf("duplicate tool slug %q", t.Slug)
		}
		seen[t.Slug] = true

		tools = append(tools, model.DefaultTool{
			Slug:         t.Slug,
			Name:         t.Name,
			Description:  t.Description,
			SystemPrompt: t.SystemPrompt,
			UserPrompt:   t.UserPrompt,
			Provider:     model.Provider(t.Provider),
			Model:        t.Model,
			Temperature:  t.Temperature,
			TopP:         t.TopP,
			MaxTokens:    t.MaxTokens,
		})
	}
	return tools, nil
}
