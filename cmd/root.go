package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gopak/minigrep/internal/app"
	"github.com/gopak/minigrep/internal/assets"
	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
)

var cfgFile string
var verbose bool
var writeDefaults bool
var version = "dev"

// lookupEnv is swapped in tests.
var lookupEnv config.LookupFunc = os.LookupEnv

var rootCmd = &cobra.Command{
	Use:   "minigrep <query> <filename>",
	Short: "Print the lines of a file that contain a query",
	Long: "Print every line of <filename> that contains <query>.\n\n" +
		"Set " + config.CaseInsensitiveEnv + " (to any value) to ignore letter case.\n" +
		"Arguments after <filename> are ignored.",
	Args:              cobra.ArbitraryArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initSettings,
	RunE:              runSearch,
}

// Execute runs the root command on the process arguments. Diagnostics are
// already printed when it returns an error; the caller only needs to exit
// non-zero.
func Execute() error { return ExecuteArgs(os.Args[1:]) }

// ExecuteArgs runs the root command on args, program name excluded.
func ExecuteArgs(args []string) error {
	defer logging.Close()
	rootCmd.SetArgs(guardPositionals(rootCmd, args))
	return rootCmd.Execute()
}

// guardPositionals inserts "--" before the first token that is not one of
// cmd's flags, so a query such as "-x" reaches RunE as the query.
func guardPositionals(cmd *cobra.Command, args []string) []string {
	i := 0
	for i < len(args) {
		tok := args[i]
		if tok == "--" {
			return args
		}
		n := flagTokens(cmd, args[i:])
		if n == 0 {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		i += n
	}
	return args
}

// flagTokens reports how many tokens the flag at args[0] consumes, or 0 when
// args[0] is not a known flag.
func flagTokens(cmd *cobra.Command, args []string) int {
	tok := args[0]
	if len(tok) < 2 || tok[0] != '-' {
		return 0
	}
	if strings.HasPrefix(tok, "--") {
		name, _, hasValue := strings.Cut(tok[2:], "=")
		if name == "help" || name == "version" {
			return 1
		}
		f := lookupFlag(cmd, name)
		if f == nil {
			return 0
		}
		if hasValue || f.NoOptDefVal != "" || len(args) < 2 {
			return 1
		}
		return 2
	}
	shorts := tok[1:]
	for j := 0; j < len(shorts); j++ {
		c := shorts[j : j+1]
		if c == "h" {
			continue
		}
		f := lookupShorthand(cmd, c)
		if f == nil {
			return 0
		}
		if f.NoOptDefVal == "" {
			// value is the rest of the token or the next one
			if j+1 < len(shorts) || len(args) < 2 {
				return 1
			}
			return 2
		}
	}
	return 1
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(name)
}

func lookupShorthand(cmd *cobra.Command, c string) *pflag.Flag {
	if f := cmd.Flags().ShorthandLookup(c); f != nil {
		return f
	}
	return cmd.PersistentFlags().ShorthandLookup(c)
}

func flagError(cmd *cobra.Command, err error) error {
	logging.SetOutput(cmd.ErrOrStderr())
	logging.Error("Problem parsing arguments: " + err.Error())
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the settings directory (default dir: ~/.config/minigrep); all *.yaml in that directory are merged")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug steps to stderr")
	rootCmd.Flags().BoolVar(&writeDefaults, "write-default-config", false, "write the default settings file if missing and exit")
	// everything after the query is positional, so extra args are never parsed as flags
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.SetFlagErrorFunc(flagError)
	rootCmd.Version = version
}

func settingsDir() (string, error) {
	if cfgFile != "" {
		return filepath.Dir(cfgFile), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "minigrep"), nil
}

func initSettings(cmd *cobra.Command, args []string) error {
	logging.SetOutput(cmd.ErrOrStderr())
	var entries []os.DirEntry
	cfgDir, err := settingsDir()
	if err == nil {
		entries, err = os.ReadDir(cfgDir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			logging.Error("settings error: " + err.Error())
			return err
		}
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		low := strings.ToLower(name)
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			files = append(files, filepath.Join(cfgDir, name))
		}
	}
	if _, err := config.LoadDefaultsAndFiles(assets.DefaultSettings(), files); err != nil {
		logging.Error("settings error: " + err.Error())
		return err
	}
	if err := config.ValidateAgainstSchema(config.Get()); err != nil {
		logging.Error("settings error: " + err.Error())
		return err
	}
	if err := logging.Init(config.Get()); err != nil {
		logging.Error("settings error: " + err.Error())
		return err
	}
	if verbose {
		logging.SetVerbose(true)
	}
	if cfgDir == "" {
		logging.Debug("settings: no config directory, using defaults")
	} else {
		logging.Debug(fmt.Sprintf("settings: %d file(s) from %s", len(files), cfgDir))
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	if writeDefaults {
		dir, err := settingsDir()
		if err != nil {
			logging.Error("settings error: " + err.Error())
			return err
		}
		p, wrote, err := assets.WriteDefaultSettingsIfMissing(dir)
		if err != nil {
			logging.Error("settings error: " + err.Error())
			return err
		}
		if wrote {
			logging.Info("wrote " + p)
		} else {
			logging.Info("exists: " + p)
		}
		return nil
	}

	full := append([]string{cmd.Root().Name()}, args...)
	cfg, err := config.Resolve(full, lookupEnv)
	if err != nil {
		logging.Error("Problem parsing arguments: " + err.Error())
		return err
	}
	if err := app.Run(cfg, cmd.OutOrStdout()); err != nil {
		logging.Error("Application error: " + err.Error())
		return err
	}
	return nil
}
