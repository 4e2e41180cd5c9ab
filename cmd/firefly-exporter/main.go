package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/prometheus/common/version"
)

const (
	programName    = "firefly-exporter"
	defaultEnvFile = ".env"
	envFileEnv     = "FF3_EXPORTER_ENV_FILE"
)

type CLI struct {
	Version kong.VersionFlag `name:"version" help:"Print version information and exit."`
	EnvFile string           `name:"env-file" env:"FF3_EXPORTER_ENV_FILE" default:".env" help:"Path to a dotenv file loaded before parsing. A missing file is ignored."`
	Serve   Serve            `embed:""`
}

func main() {
	// Variables from the dotenv file have to be in the environment before kong
	// resolves env tags.
	if err := loadEnvFile(envFilePath(os.Args[1:], os.LookupEnv)); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: failed to load env file: %v\n", programName, err)
		os.Exit(1)
	}

	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name(programName),
		kong.Description("Prometheus exporter for Firefly III."),
		kong.Vars{"version": version.Print(programName)},
	)
	if err != nil {
		panic(err)
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		parser.Errorf("%s", err)
		os.Exit(1)
	}

	err = serve(context.Background(), &cli)
	if err != nil && !errors.Is(err, context.Canceled) {
		os.Exit(1)
	}
}

// envFilePath resolves the dotenv location the same way kong will resolve
// --env-file later: flag first, then environment, then the default.
func envFilePath(args []string, lookupEnv func(string) (string, bool)) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}

		if v, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return v
		}

		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}

	if v, ok := lookupEnv(envFileEnv); ok {
		return v
	}

	return defaultEnvFile
}

// loadEnvFile never overrides variables that are already set.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}
