package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gametree/builder"
	"github.com/katalvlaran/gametree/minimax"
	"github.com/katalvlaran/gametree/treeio"
)

const version = "0.1.0"

// Output formats for the eval subcommand.
const (
	formatTree   = "tree"   // indented dump with backed-up values
	formatLeaves = "leaves" // flat "id: value" leaf listing
	formatValue  = "value"  // root value only
)

var errNoInput = errors.New("no input: pass description paths or --discover")

var (
	showVersion bool
	cfgPath     string
	format      string
	discoverDir string
	interactive bool
)

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show the version and exit")
	evalCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file read by viper (flags win over file values)")
	evalCmd.Flags().StringVarP(&format, "format", "f", "", "output format: tree|leaves|value")
	evalCmd.Flags().StringVarP(&discoverDir, "discover", "d", "", "recursively discover description files under this directory")
	evalCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for description paths on stdin (exit/quit to leave)")
}

// rootCmd is the main command for the 'gametree' binary.
var rootCmd = &cobra.Command{
	Use:   "gametree",
	Short: "build and minimax-evaluate game trees from JSON/YAML descriptions",
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println("gametree", version)
			return
		}
		// nolint:errcheck
		cmd.Usage()
	},
}

// evalCmd decodes each description file, builds the tree, evaluates it,
// and renders the result.
var evalCmd = &cobra.Command{
	Use:   "eval [paths...]",
	Short: "evaluate game-tree description files",
	Long: "eval runs the full pipeline per file: decode (JSON/YAML) -> build -> " +
		"minimax -> render. A file that fails is logged and skipped; the run " +
		"continues with the remaining files.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEval(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func runEval(args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Flags win over config file values.
	if format == "" {
		format = cfg.Format
	}
	switch format {
	case formatTree, formatLeaves, formatValue:
	default:
		return fmt.Errorf("unknown format %q (want tree|leaves|value)", format)
	}
	if discoverDir == "" {
		discoverDir = cfg.DiscoverRoot
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger error: %w", err)
	}
	defer logger.Sync() // nolint:errcheck

	// One session id per invocation ties all per-file log lines together.
	log := logger.With("session", uuid.NewString())

	if interactive {
		return runInteractive(log, os.Stdin, os.Stdout)
	}

	paths := args
	if discoverDir != "" {
		found, derr := treeio.Discover(discoverDir)
		if derr != nil {
			return derr
		}
		log.Infow("discovered description files", "dir", discoverDir, "count", len(found))
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return errNoInput
	}

	for _, path := range paths {
		if err = evalFile(os.Stdout, path); err != nil {
			log.Errorw("skipping file", "path", path, "error", err)

			continue
		}
		log.Infow("evaluated", "path", path, "format", format)
	}

	return nil
}

// evalFile runs decode -> build -> evaluate -> render for a single file.
func evalFile(w io.Writer, path string) error {
	desc, err := treeio.DecodeFile(path)
	if err != nil {
		return err
	}
	root, err := builder.Build(desc)
	if err != nil {
		return err
	}
	value, err := minimax.Evaluate(root)
	if err != nil {
		return err
	}

	switch format {
	case formatValue:
		_, err = fmt.Fprintf(w, "%s: %v\n", path, value)

		return err
	case formatLeaves:
		return treeio.WriteLeaves(w, root)
	default:
		return treeio.WriteTree(w, root)
	}
}

// runInteractive prompts for description paths until exit/quit or EOF,
// mirroring the classic read-eval-print flow: a bad path or a bad tree is
// reported and the loop carries on.
func runInteractive(log *zap.SugaredLogger, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter a description path (exit/quit to leave): ")
		if !scanner.Scan() {
			fmt.Fprintln(out)

			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isExitCommand(line) {
			return nil
		}
		if err := evalFile(out, line); err != nil {
			log.Errorw("evaluation failed", "path", line, "error", err)
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// isExitCommand reports whether line asks to leave the interactive loop.
// Recognized commands are "exit" and "quit", case-insensitive.
func isExitCommand(line string) bool {
	return strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit")
}

// newLogger builds the CLI's structured logger: production config by
// default, development config when the configured level is "debug".
func newLogger(level string) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if strings.EqualFold(level, "debug") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
