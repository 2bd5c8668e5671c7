package main

import (
	"os"
	"path/filepath"

	"git.lolli.tech/lollipopkit/minicpp/compiler/ast"
	"git.lolli.tech/lollipopkit/minicpp/compiler/parser"
	"git.lolli.tech/lollipopkit/minicpp/consts"
	"git.lolli.tech/lollipopkit/minicpp/term"
	"git.lolli.tech/lollipopkit/minicpp/utils"
	"git.lolli.tech/lollipopkit/minicpp/view"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Write the syntax tree of a file to <file>.ast.json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := WriteAst(args[0])
		if err != nil {
			return err
		}
		term.Suc("written %s", out)
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse the syntax tree of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chunk, err := load(args[0], cfg.ChunkCache)
		if chunk == nil {
			return err
		}
		warnIllegal(err)
		return view.Show(chunk.Program, filepath.Base(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(viewCmd)
}

// WriteAst parses path and writes its indented JSON tree beside it.
func WriteAst(path string) (string, error) {
	src, err := utils.ReadSource(path)
	if err != nil {
		return "", err
	}

	prog, err := parser.Parse(src, path)
	if prog == nil {
		return "", err
	}
	warnIllegal(err)

	j, err := ast.EncodeIndent(prog)
	if err != nil {
		return "", err
	}

	out := path + consts.AstJsonSuffix
	if err := os.WriteFile(out, j, 0644); err != nil {
		return "", err
	}
	return out, nil
}
