package consts

import (
	"os"
	"path/filepath"
)

const (
	VERSION = "0.1.0"

	EnvDebug  = "MINICPP_DEBUG"
	EnvConfig = "MINICPP_CONFIG"

	AstJsonSuffix  = ".ast.json"
	AstChunkSuffix = ".astc"
)

var (
	// Debug enables logger output. Set from config, env or --debug.
	Debug = os.Getenv(EnvDebug) != ""

	ConfigDir         = filepath.Join(os.Getenv("HOME"), ".config")
	DefaultConfigPath = filepath.Join(ConfigDir, "minicpp.yaml")
	HistoryPath       = filepath.Join(ConfigDir, "minicpp_history.json")
)
