package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"git.lolli.tech/lollipopkit/minicpp/astchunk"
	"git.lolli.tech/lollipopkit/minicpp/compiler"
	"git.lolli.tech/lollipopkit/minicpp/compiler/ast"
	"git.lolli.tech/lollipopkit/minicpp/compiler/lexer"
	"git.lolli.tech/lollipopkit/minicpp/consts"
	"git.lolli.tech/lollipopkit/minicpp/logger"
	"git.lolli.tech/lollipopkit/minicpp/printer"
	"git.lolli.tech/lollipopkit/minicpp/query"
	"git.lolli.tech/lollipopkit/minicpp/term"
	"git.lolli.tech/lollipopkit/minicpp/utils"
	"github.com/spf13/cobra"
)

var (
	parseJson    bool
	parseQuery   string
	parseNoCache bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print its syntax tree",
	Long: `Parses a file and prints its syntax tree.

The tree is cached next to the source as <file>.astc and reused while the
source is unchanged.

Examples:
  minicpp parse main.cpp
  minicpp parse --json main.cpp
  minicpp parse --query '#.type' main.cpp`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the tokens of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJson, "json", false, "print the tree as JSON")
	parseCmd.Flags().StringVarP(&parseQuery, "query", "q", "", "print the result of a gjson path over the JSON tree")
	parseCmd.Flags().BoolVar(&parseNoCache, "no-cache", false, "ignore and do not write the .astc cache")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokensCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	chunk, err := load(args[0], cfg.ChunkCache && !parseNoCache)
	if chunk == nil {
		return err
	}
	warnIllegal(err)

	switch {
	case parseQuery != "":
		data, err := ast.Encode(chunk.Program)
		if err != nil {
			return err
		}
		res, err := query.Lookup(string(data), parseQuery)
		if err != nil {
			return fmt.Errorf("query %q: %w", parseQuery, err)
		}
		term.Print(res + "\n")
	case parseJson:
		data, err := ast.EncodeIndent(chunk.Program)
		if err != nil {
			return err
		}
		term.Print(string(data) + "\n")
	default:
		term.Print(printer.Sprint(chunk.Program))
	}
	return nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := utils.ReadSource(args[0])
	if err != nil {
		return err
	}
	lex := lexer.NewLexer(src, args[0])
	for _, tok := range lex.Tokens() {
		term.Print(tok.String() + "\n")
	}
	for _, e := range lex.Illegal() {
		term.Warn("%v", e)
	}
	return nil
}

func warnIllegal(err error) {
	for _, e := range lexer.IllegalChars(err) {
		term.Warn("%v", e)
	}
}

// compile parses src and, when it is free of illegal characters and
// caching is on, writes source.astc.
func compile(src, source string, cache bool) (*astchunk.Chunk, error) {
	chunk, err := compiler.Compile(src, source)
	if chunk == nil || err != nil || !cache {
		return chunk, err
	}

	data, dumpErr := chunk.Dump()
	if dumpErr != nil {
		term.Warn("[compile] dump chunk failed: %v", dumpErr)
		return chunk, nil
	}
	astc := source + consts.AstChunkSuffix
	if werr := os.WriteFile(astc, data, 0644); werr != nil {
		term.Warn("[compile] write %s failed: %v", astc, werr)
	}
	return chunk, nil
}

// load returns the tree of source, from its .astc cache when that was built
// from the current source.
func load(source string, cache bool) (*astchunk.Chunk, error) {
	src, err := utils.ReadSource(source)
	if err != nil {
		return nil, err
	}

	astc := source + consts.AstChunkSuffix
	if !cache || !utils.Exist(astc) {
		return compile(src, source, cache)
	}

	data, err := os.ReadFile(astc)
	if err != nil {
		term.Warn("[run] can't read %s: %v", astc, err)
		return compile(src, source, cache)
	}

	chunk, err := astchunk.Verify(data, []byte(src), source)
	switch {
	case err == nil:
		logger.I("[run] using cached %s", astc)
		return chunk, nil
	case errors.Is(err, astchunk.ErrMismatchedHash):
		logger.I("[run] source changed, recompiling %s", source)
	case strings.HasPrefix(err.Error(), astchunk.MismatchVersionPrefix):
		logger.I("[run] mismatch version, recompiling %s", source)
	default:
		term.Warn("[run] chunk verify failed, recompiling %s: %v", source, err)
	}
	return compile(src, source, cache)
}
