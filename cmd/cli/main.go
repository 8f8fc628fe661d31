package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/UILens-hq/uilens/internal/analyzer"
	"github.com/UILens-hq/uilens/internal/config"
	"github.com/UILens-hq/uilens/internal/fsys"
	"github.com/UILens-hq/uilens/internal/manifest"
	"github.com/UILens-hq/uilens/pkg/model"
)

var version = "dev"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:     "uilens",
		Short:   "UILens - component metadata extraction",
		Long:    `UILens extracts tag names, typed properties and emitted events from declarative UI component sources for downstream design tooling.`,
		Version: version,
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	var (
		filePath string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the component model of a single source file",
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := filepath.Abs(filePath)
			if err != nil {
				return err
			}

			a := analyzer.New(fsys.OS{}, analyzer.WithStrict(strict))
			result := a.AnalyzeFile(context.Background(), abs)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("analysis failed for %s", filePath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Component source file")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unresolved base classes")
	cmd.MarkFlagRequired("file")

	return cmd
}

func analyzeCmd() *cobra.Command {
	var (
		repoPath string
		output   string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:     "analyze",
		Aliases: []string{"manifest"},
		Short:   "Analyze a repository and emit a component manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			root, err := filepath.Abs(repoPath)
			if err != nil {
				return err
			}

			projectCfg, err := config.LoadProjectConfig(root)
			if err != nil {
				return fmt.Errorf("failed to load project config: %w", err)
			}
			projectCfg.Merge(&config.ProjectConfig{Strict: strict})

			files, err := findComponentFiles(root, projectCfg)
			if err != nil {
				return err
			}
			log.Info().Int("files", len(files)).Str("root", root).Msg("analyzing components")

			a := analyzer.New(fsys.OS{},
				analyzer.WithStrict(projectCfg.Strict),
				analyzer.WithComponentSuffix(projectCfg.ComponentSuffix))

			var components []model.ComponentModel
			failures := 0
			for _, file := range files {
				result := a.AnalyzeFile(ctx, file)
				for _, w := range result.Warnings {
					log.Warn().Str("file", file).Msg(w)
				}
				for _, e := range result.Errors {
					log.Error().Str("file", file).Msg(e)
				}
				if result.Model == nil {
					failures++
					continue
				}
				components = append(components, *result.Model)
			}

			doc := manifest.Build(components, root)

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			if err := doc.Encode(out); err != nil {
				return err
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d files failed analysis", failures, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&repoPath, "path", "p", ".", "Path to repository")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Manifest output file (default stdout)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unresolved base classes")

	return cmd
}

// findComponentFiles walks root for sources selected by the project
// config's include/exclude globs, skipping vendored and hidden trees.
// File discovery stays out of the engine packages.
func findComponentFiles(root string, cfg *config.ProjectConfig) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name == "node_modules" || name == "dist" || (strings.HasPrefix(name, ".") && path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if cfg.Matches(filepath.ToSlash(rel)) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
