/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/casenorm/internal/adapter/textio"
	"github.com/eslsoft/casenorm/internal/app"
	"github.com/eslsoft/casenorm/internal/infrastructure/config"
)

// ErrSameInputOutput is returned when a run would truncate its own input.
var ErrSameInputOutput = errors.New("input and output refer to the same file")

func newNormalizeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [INPUT]",
		Short: "Normalize the casing of a line-delimited corpus",
		Long: `Read a newline-delimited UTF-8 corpus, normalize the casing of every line and
write the result in the same order. INPUT and --output default to "-", meaning
standard input and standard output. Paths ending in .gz are (de)compressed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) == 1 {
				v.Set(config.KeyInput, args[0])
			}
			setStringArrayFlag(v, config.KeyAcronyms, cmd.Flags(), "acronym")
			setStringArrayFlag(v, config.KeyTitlecase, cmd.Flags(), "titlecase")

			container, err := app.Initialize(v)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			cfg := container.Config.Normalize

			if err := checkDistinctPaths(cfg.Input, cfg.Output); err != nil {
				return err
			}

			src, err := textio.OpenSource(cfg.Input, cmd.InOrStdin(), textio.WithGzip(cfg.Gzip))
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			sink, err := textio.OpenSink(cfg.Output, cmd.OutOrStdout(), textio.WithGzip(cfg.Gzip))
			if err != nil {
				_ = src.Close()
				return fmt.Errorf("open output: %w", err)
			}

			closeFns := []func() error{sink.Close, src.Close}
			defer func() {
				for _, closer := range closeFns {
					if cerr := closer(); cerr != nil && err == nil {
						err = fmt.Errorf("close stream: %w", cerr)
					}
				}
			}()

			if _, err := container.Service.Run(cmd.Context(), src, sink); err != nil {
				return fmt.Errorf("normalize corpus: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "-", "output file path, use - for standard output")
	cmd.Flags().Bool("sentence-case", false, "capitalize the first letter of each sentence")
	cmd.Flags().StringArray("acronym", nil, "acronym to force uppercase (repeatable)")
	cmd.Flags().StringArray("titlecase", nil, "word to force Title Case (repeatable)")
	cmd.Flags().Bool("gzip", false, "treat input and output as gzip streams")
	cmd.Flags().Int("cache-size", 0, "memoize up to N distinct lines (0 disables)")

	bindFlagToViper(v, config.KeyOutput, cmd.Flags().Lookup("output"))
	bindFlagToViper(v, config.KeySentenceCase, cmd.Flags().Lookup("sentence-case"))
	bindFlagToViper(v, config.KeyGzip, cmd.Flags().Lookup("gzip"))
	bindFlagToViper(v, config.KeyCacheSize, cmd.Flags().Lookup("cache-size"))

	return cmd
}

// checkDistinctPaths rejects an output that names the input file, including
// through a symlink or hard link.
func checkDistinctPaths(input, output string) error {
	if textio.IsStdio(input) || textio.IsStdio(output) {
		return nil
	}
	in, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if in == out {
		return fmt.Errorf("%w: %s", ErrSameInputOutput, input)
	}

	inInfo, err := os.Stat(in)
	if err != nil {
		// Missing input is reported when the source is opened.
		return nil
	}
	outInfo, err := os.Stat(out)
	if err != nil {
		return nil
	}
	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%w: %s and %s", ErrSameInputOutput, input, output)
	}
	return nil
}
