package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hupe1980/primereport"
	"github.com/hupe1980/primereport/internal/config"
	"github.com/hupe1980/primereport/logging"
	"github.com/hupe1980/primereport/runner"
)

// cliFlags holds the persistent flag values shared by all subcommands.
type cliFlags struct {
	configPath string
	start      uint64
	end        uint64
	artifact   string
	store      string
	dir        string
	dsn        string
	logLevel   string
	logFormat  string
	noVerify   bool
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "primereport",
		Short: "Enumerate primes in a range and persist them as a report artifact",
		Long: `primereport scans an inclusive range [start, end] for primes by trial
division, writes them one per line to a report artifact, reads the artifact
back and prints it.

Configuration is read from a YAML file (--config), then PRIMEREPORT_* environment
variables, then explicitly set flags.

Example:
  primereport --start 1 --end 100 --artifact out/primes.txt
  primereport --store sqlite --dsn reports.db --artifact small --end 20`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, f)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "primereport.yaml", "path to YAML config file")
	pf.StringVar(&f.store, "store", config.DriverFile, "artifact store driver (file, sqlite, memory)")
	pf.StringVar(&f.dir, "dir", ".", "root directory for the file store")
	pf.StringVar(&f.dsn, "dsn", "primereport.db", "database path for the sqlite store")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "text", "log format (text, json)")

	fl := rootCmd.Flags()
	fl.Uint64Var(&f.start, "start", 1, "first integer of the range (inclusive)")
	fl.Uint64Var(&f.end, "end", 100, "last integer of the range (inclusive)")
	fl.StringVarP(&f.artifact, "artifact", "o", "primes.txt", "artifact name, or a path for the file store")
	fl.BoolVar(&f.noVerify, "no-verify", false, "skip decoding and comparing the read-back artifact")

	rootCmd.AddCommand(newCheckCmd(), newListCmd(f))
	return rootCmd
}

// loadConfig layers the config file, the environment and explicitly set flags.
func loadConfig(cmd *cobra.Command, f *cliFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("start") {
		cfg.Range.Start = f.start
	}
	if changed("end") {
		cfg.Range.End = f.end
	}
	if changed("artifact") {
		cfg.Artifact = f.artifact
	}
	if changed("no-verify") {
		cfg.Verify = !f.noVerify
	}
	if changed("store") {
		cfg.Store.Driver = f.store
	}
	if changed("dir") {
		cfg.Store.Dir = f.dir
	}
	if changed("dsn") {
		cfg.Store.DSN = f.dsn
	}
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *logging.ReportLogger {
	// level was validated by cfg.Validate
	level, _ := logging.ParseLevel(cfg.Logging.Level)
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: w,
	}).WithComponent("cli")
}

func runReport(cmd *cobra.Command, f *cliFlags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr()).WithContext("store", cfg.Store.Driver)

	st, name, closeFn, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil {
			logger.Warn("Closing store failed", "error", cerr)
		}
	}()

	rep := primereport.New(func(o *primereport.Options) {
		o.ArtifactStore = st
		o.Verify = cfg.Verify
		o.Logger = logger
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning %s (%d integers) -> %s (%s store)\n", cfg.Range, cfg.Range.Width(), name, cfg.Store.Driver)

	stopTimer := logger.StartTimer("report")
	res, err := rep.Report(cmd.Context(), cfg.Range.Start, cfg.Range.End, name)
	if err != nil {
		return err
	}
	stopTimer()
	printResult(out, res)
	return nil
}

func printResult(out io.Writer, res *runner.Result) {
	if res.Count() == 0 {
		fmt.Fprintln(out, "Found 0 primes")
	} else {
		maxV, _ := res.Primes.Max()
		fmt.Fprintf(out, "Found %d primes (sum %d, mean %.2f, max %d)\n",
			res.Count(), res.Primes.Sum(), res.Primes.Mean(), maxV)
	}
	fmt.Fprintf(out, "--- %s ---\n", res.Artifact)
	_, _ = out.Write(res.Content)
}
