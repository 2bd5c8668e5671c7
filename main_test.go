package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.lolli.tech/lollipopkit/minicpp/astchunk"
	"git.lolli.tech/lollipopkit/minicpp/compiler/lexer"
	"git.lolli.tech/lollipopkit/minicpp/compiler/parser"
	"git.lolli.tech/lollipopkit/minicpp/consts"
	"git.lolli.tech/lollipopkit/minicpp/term"
	"github.com/tidwall/gjson"
)

const demo = `class Student {
    private:
        int id, roll_number;
        float gpa;
    public:
        int getId() { return id; }
};

int main() {
    float score = 95.5, gpa;
    cout << "Enter score: ";
    cin >> score;
    return 0;
}
`

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func captureTerm(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	term.SetOutput(&buf, &buf)
	term.SetColor(false)
	t.Cleanup(func() { term.SetOutput(os.Stdout, os.Stderr) })
	t.Setenv(consts.EnvConfig, filepath.Join(t.TempDir(), "none.yaml"))
	return &buf
}

func TestLoadWritesAndReusesChunk(t *testing.T) {
	path := writeSource(t, "demo.cpp", demo)

	chunk, err := load(path, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(chunk.Program.Stats) != 2 {
		t.Fatalf("got %d statements, want 2", len(chunk.Program.Stats))
	}

	astc := path + consts.AstChunkSuffix
	data, err := os.ReadFile(astc)
	if err != nil {
		t.Fatalf("chunk not written: %v", err)
	}
	if !astchunk.IsChunk(data) {
		t.Fatal("written file is not a chunk")
	}

	cached, err := load(path, true)
	if err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if cached.Hash != chunk.Hash || len(cached.Program.Stats) != 2 {
		t.Error("cached chunk differs")
	}
}

func TestLoadRecompilesChangedSource(t *testing.T) {
	path := writeSource(t, "a.cpp", "int a;")
	if _, err := load(path, true); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("int a; int b;"), 0644); err != nil {
		t.Fatal(err)
	}
	chunk, err := load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunk.Program.Stats) != 2 {
		t.Errorf("stale chunk used: %d statements", len(chunk.Program.Stats))
	}

	data, _ := os.ReadFile(path + consts.AstChunkSuffix)
	if _, err := astchunk.Verify(data, []byte("int a; int b;"), path); err != nil {
		t.Errorf("chunk not refreshed: %v", err)
	}
}

func TestLoadNoCache(t *testing.T) {
	path := writeSource(t, "a.cpp", "int a;")
	if _, err := load(path, false); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + consts.AstChunkSuffix); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("chunk written with cache off: %v", err)
	}
}

func TestLoadIllegalCharsNotCached(t *testing.T) {
	path := writeSource(t, "a.cpp", "int a; $")
	chunk, err := load(path, true)
	if chunk == nil {
		t.Fatalf("load: %v", err)
	}
	if len(lexer.IllegalChars(err)) != 1 {
		t.Errorf("want one illegal character, got %v", err)
	}
	if _, err := os.Stat(path + consts.AstChunkSuffix); !errors.Is(err, os.ErrNotExist) {
		t.Error("chunk with illegal characters was cached")
	}
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeSource(t, "bad.cpp", "int a")
	chunk, err := load(path, true)
	if chunk != nil || !errors.Is(err, parser.ErrSyntax) {
		t.Errorf("got %v, %v", chunk, err)
	}
}

func TestWriteAst(t *testing.T) {
	path := writeSource(t, "demo.cpp", demo)
	out, err := WriteAst(path)
	if err != nil {
		t.Fatalf("WriteAst: %v", err)
	}
	if out != path+consts.AstJsonSuffix {
		t.Errorf("out = %s", out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "0.body.0.members.1.type").String(); got != "multiple_declaration" {
		t.Errorf("0.body.0.members.1.type = %q", got)
	}
	if got := gjson.GetBytes(data, "1.body.#.type").Raw; got != `["multiple_declaration","output","input","return"]` {
		t.Errorf("main body types = %s", got)
	}
}

func TestParseCommand(t *testing.T) {
	buf := captureTerm(t)
	path := writeSource(t, "demo.cpp", demo)

	rootCmd.SetArgs([]string{"parse", "--no-cache", "--query", "1.name", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "main" {
		t.Errorf("query printed %q", got)
	}
	parseQuery = ""

	buf.Reset()
	rootCmd.SetArgs([]string{"parse", "--no-cache", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Type: class_declaration\n") {
		t.Errorf("tree printed %q", buf.String())
	}
}

func TestTokensCommand(t *testing.T) {
	buf := captureTerm(t)
	path := writeSource(t, "a.cpp", "cin >> x; #")

	rootCmd.SetArgs([]string{"tokens", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("tokens: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "line 1") != 4 {
		t.Errorf("want 4 tokens:\n%s", out)
	}
	if !strings.Contains(out, "illegal character '#'") {
		t.Errorf("illegal character not reported:\n%s", out)
	}
}
