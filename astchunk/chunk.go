package astchunk

import (
	"bytes"
	"errors"
	"fmt"

	"git.lolli.tech/lollipopkit/minicpp/compiler/ast"
	"git.lolli.tech/lollipopkit/minicpp/utils"
)

const (
	VERSION   byte = 1
	SIGNATURE      = `MINICPP`

	MismatchVersionPrefix = "mismatched chunk version"

	hashLen   = 32
	headerLen = 2 + len(SIGNATURE) + hashLen
)

var (
	ErrMismatchedHash = errors.New("source hash mismatch")
	ErrBadSignature   = errors.New("not an ast chunk")
)

// Chunk is a parsed program plus the md5 of the source it came from.
type Chunk struct {
	Source  string
	Hash    string
	Program *ast.Program
}

// Dump lays out a chunk as: ESC, version, signature, source md5 (hex),
// JSON program.
func (self *Chunk) Dump() ([]byte, error) {
	if len(self.Hash) != hashLen {
		return nil, fmt.Errorf("bad source hash %q", self.Hash)
	}
	data, err := ast.Encode(self.Program)
	if err != nil {
		return nil, err
	}

	by := make([]byte, 0, headerLen+len(data))
	by = append(by, '\x1b', VERSION)
	by = append(by, SIGNATURE...)
	by = append(by, self.Hash...)
	return append(by, data...), nil
}

func IsChunk(data []byte) bool {
	return len(data) >= headerLen &&
		data[0] == '\x1b' &&
		bytes.Equal(data[2:2+len(SIGNATURE)], []byte(SIGNATURE))
}

func Undump(data []byte, source string) (*Chunk, error) {
	if !IsChunk(data) {
		return nil, ErrBadSignature
	}
	if data[1] != VERSION {
		return nil, fmt.Errorf("%s: got %d, want %d", MismatchVersionPrefix, data[1], VERSION)
	}

	prog, err := ast.Decode(data[headerLen:])
	if err != nil {
		return nil, err
	}
	return &Chunk{
		Source:  source,
		Hash:    string(data[2+len(SIGNATURE) : headerLen]),
		Program: prog,
	}, nil
}

// Verify undumps data and checks it was built from src.
func Verify(data, src []byte, source string) (*Chunk, error) {
	chunk, err := Undump(data, source)
	if err != nil {
		return nil, err
	}
	if chunk.Hash != utils.Md5(src) {
		return chunk, ErrMismatchedHash
	}
	return chunk, nil
}
