package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/inch/internal/app"
	"go.trai.ch/inch/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a single file through its project session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			req, err := requestFromFlags(cmd, args[0])
			if err != nil {
				return err
			}

			content, err := os.ReadFile(req.ResourcePath)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrResourceReadFailed.Error()), "path", req.ResourcePath)
			}
			req.Content = string(content)

			outcome, err := c.app.Compile(cmd.Context(), req)
			if err != nil {
				return err
			}

			for _, d := range outcome.Errors {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), d.Format())
			}
			if len(outcome.Errors) > 0 {
				return domain.ErrCompileFailed
			}

			outDir, _ := cmd.Flags().GetString("out")
			if outDir == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), outcome.Result.Code)
				return nil
			}
			return writeOutputs(outDir, req.ResourcePath, outcome)
		},
	}
	addRequestFlags(cmd)
	cmd.Flags().StringP("out", "o", "", "Write outputs to this directory instead of stdout")
	return cmd
}

// addRequestFlags registers the flags shared by compile and watch.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("context", "c", "", "Build context directory (defaults to the file's directory)")
	cmd.Flags().StringP("query", "q", "", "Option overrides in query form, e.g. \"?target=es2017&declaration\"")
	cmd.Flags().Bool("source-map", false, "Force source-map emission for the session")
}

// requestFromFlags assembles a compile request for the named file from the
// shared flags.
func requestFromFlags(cmd *cobra.Command, file string) (domain.CompileRequest, error) {
	resource, err := filepath.Abs(file)
	if err != nil {
		return domain.CompileRequest{}, zerr.Wrap(err, "failed to resolve resource path")
	}

	contextDir, _ := cmd.Flags().GetString("context")
	if contextDir == "" {
		contextDir = filepath.Dir(resource)
	} else if contextDir, err = filepath.Abs(contextDir); err != nil {
		return domain.CompileRequest{}, zerr.Wrap(err, "failed to resolve context directory")
	}

	query, _ := cmd.Flags().GetString("query")
	sourceMap, _ := cmd.Flags().GetBool("source-map")

	return domain.CompileRequest{
		ResourcePath:       resource,
		SourceMapRequested: sourceMap,
		BuildContext:       contextDir,
		Query:              query,
	}, nil
}

// writeOutputs materializes the compile result under dir.
func writeOutputs(dir, resource string, outcome app.Outcome) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create output directory")
	}

	base := strings.TrimSuffix(filepath.Base(resource), filepath.Ext(resource))
	write := func(name, text string) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write output"), "path", path)
		}
		return nil
	}

	if err := write(base+".js", outcome.Result.Code); err != nil {
		return err
	}
	if outcome.Result.SourceMap != nil {
		data, err := json.Marshal(outcome.Result.SourceMap)
		if err != nil {
			return zerr.Wrap(err, domain.ErrSourceMapAssembly.Error())
		}
		if err := write(base+".js.map", string(data)); err != nil {
			return err
		}
	}
	if outcome.Result.Declaration != "" {
		if err := write(base+domain.DeclarationSuffix, outcome.Result.Declaration); err != nil {
			return err
		}
	}
	return nil
}
