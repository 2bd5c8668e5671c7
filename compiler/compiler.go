package compiler

import (
	"git.lolli.tech/lollipopkit/minicpp/astchunk"
	"git.lolli.tech/lollipopkit/minicpp/compiler/parser"
	"git.lolli.tech/lollipopkit/minicpp/utils"
)

// Compile parses chunk and wraps the tree with the hash of its source.
// Errors follow parser.Parse: the chunk is nil only on a syntax error.
func Compile(chunk, chunkName string) (*astchunk.Chunk, error) {
	prog, err := parser.Parse(chunk, chunkName)
	if prog == nil {
		return nil, err
	}
	return &astchunk.Chunk{
		Source:  chunkName,
		Hash:    utils.Md5([]byte(chunk)),
		Program: prog,
	}, err
}
