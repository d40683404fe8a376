package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbaskett248/atlex/internal/watch"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [file...]",
		Short: "Check AT sources and report positions no rule matches",
		Long: `Tokenizes the named files, walking directories for ` + sourceSuffix + ` sources,
and prints a file:line:col: message diagnostic for every position no
rule matches. Reads stdin when no file is given. Exits with status 1
when there are diagnostics.`,
		RunE: runCheck,
	}
	checkMode      string
	checkGrammar   string
	checkMaxErrors int
	checkWatch     bool
)

// sourceSuffix is the extension directory walks and the watcher accept.
const sourceSuffix = ".at"

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkMode, "mode", "m", "", "start mode (default from settings)")
	checkCmd.Flags().StringVar(&checkGrammar, "grammar", "", "grammar description file (default embedded AT)")
	checkCmd.Flags().IntVar(&checkMaxErrors, "max-errors", -1, "diagnostics cap per file, 0 for no cap (default from settings)")
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "keep running, re-checking files as they change")
}

// expandArgs turns the argument list into source files, walking
// directories for sources.
func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, sourceSuffix) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// checkOne checks a single source and prints its diagnostics, returning
// how many there were.
func checkOne(path string) (int, error) {
	cfg, err := loadSettings(path)
	if err != nil {
		return 0, err
	}
	if path != "" && path != "-" && cfg.Excluded(path) {
		slog.Debug("excluded by settings", "path", path)
		return 0, nil
	}
	catalog, err := loadCatalog(cfg, checkGrammar)
	if err != nil {
		return 0, err
	}
	src, err := readSource(path)
	if err != nil {
		return 0, err
	}

	mode := checkMode
	if mode == "" {
		mode = cfg.StartMode
	}
	if checkMaxErrors >= 0 {
		cfg.MaxErrors = checkMaxErrors
	}

	diags, err := lintSource(catalog, cfg, mode, src)
	if err != nil {
		return 0, err
	}
	for _, d := range diags {
		fmt.Println(d)
	}
	return len(diags), nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	files, err := expandArgs(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		files = []string{"-"}
	}

	total := 0
	for _, path := range files {
		n, err := checkOne(path)
		if err != nil {
			return err
		}
		total += n
	}

	if checkWatch {
		if len(args) == 0 {
			return fmt.Errorf("--watch needs files or directories to watch")
		}
		return watchAndCheck(args, files)
	}

	if total > 0 {
		return errDiagnostics
	}
	return nil
}

// watchAndCheck re-checks files as they change, until interrupted.
func watchAndCheck(args, files []string) error {
	known := make(map[string]bool, len(files))
	for _, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			known[abs] = true
		}
	}

	w, err := watch.New(func(path string) bool {
		if strings.HasSuffix(path, sourceSuffix) {
			return true
		}
		abs, err := filepath.Abs(path)
		return err == nil && known[abs]
	}, func(paths []string) {
		for _, path := range paths {
			n, err := checkOne(path)
			if err != nil {
				slog.Warn("check failed", "path", path, "error", err)
				continue
			}
			if n == 0 {
				fmt.Printf("%s: clean\n", path)
			}
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	for _, arg := range args {
		if err := w.Add(arg); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	slog.Info("watching for changes", "paths", strings.Join(args, ", "))
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
