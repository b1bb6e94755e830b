// Command synonyms resolves Swedish words from the command line using the
// same pipeline as the server.
//
//	synonyms glad snabb
//	synonyms -word glad -max 5 -offline
//
// Each word prints one line "word: s1, s2, ...". A word with no synonyms
// prints "word: -".
//
// Exit codes: 0 = success, 1 = a lookup failed or bad usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/synonymer/internal/app"
	"github.com/heartmarshall/synonymer/internal/config"
	"github.com/heartmarshall/synonymer/internal/domain"
)

type wordList []string

func (w *wordList) String() string     { return strings.Join(*w, ",") }
func (w *wordList) Set(v string) error { *w = append(*w, v); return nil }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("synonyms", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var words wordList
	fs.Var(&words, "word", "word to look up (repeatable)")
	maxSynonyms := fs.Int("max", 0, "maximum synonyms per word (3..20, 0 = configured)")
	offline := fs.Bool("offline", false, "use only the local dictionary")
	alwaysOnline := fs.Bool("always-online", false, "query remote sources even when the local dictionary has the word")
	parallel := fs.Int("parallel", 4, "words resolved concurrently")
	timeout := fs.Duration("timeout", 30*time.Second, "overall deadline")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	configPath := fs.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config (default $CONFIG_PATH or ./config.yaml)")
	envHelp := fs.Bool("env", false, "list configuration environment variables and exit")
	version := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *version {
		fmt.Fprintln(stdout, app.BuildVersion())
		return 0
	}
	if *envHelp {
		usage, err := config.Usage()
		if err != nil {
			fmt.Fprintf(stderr, "synonyms: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, usage)
		return 0
	}

	words = append(words, fs.Args()...)
	if len(words) == 0 {
		fmt.Fprintln(stderr, "synonyms: no words given")
		fs.Usage()
		return 1
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "synonyms: %v\n", err)
		return 1
	}
	cfg.Log.Level = *logLevel
	cfg.Log.Format = "text"

	defaults := &cfg.Synonyms.Defaults
	if *maxSynonyms != 0 {
		defaults.MaxSynonyms = *maxSynonyms
	}
	if *offline {
		defaults.EnableOnlineLookup = false
	}
	if *alwaysOnline {
		defaults.AlwaysTryOnline = true
	}
	if err := defaults.Validate(); err != nil {
		fmt.Fprintf(stderr, "synonyms: %v\n", err)
		return 1
	}
	// Flags win over any settings file.
	cfg.Synonyms.SettingsPath = ""

	logger := app.NewLogger(cfg.Log)

	p, err := app.NewPipeline(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "synonyms: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	results := make([][]string, len(words))
	errs := make([]error, len(words))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*parallel, 1))
	for i, w := range words {
		g.Go(func() error {
			results[i], errs[i] = p.Service.Resolve(gctx, w)
			return nil
		})
	}
	_ = g.Wait()

	code := 0
	for i, w := range words {
		if errs[i] != nil {
			var resErr *domain.ResolutionError
			if errors.As(errs[i], &resErr) {
				fmt.Fprintf(stderr, "%s: %s\n", w, resErr.Error())
			} else {
				fmt.Fprintf(stderr, "%s: %v\n", w, errs[i])
			}
			code = 1
			continue
		}
		fmt.Fprintln(stdout, formatLine(w, results[i]))
	}
	return code
}

func formatLine(word string, synonyms []string) string {
	if len(synonyms) == 0 {
		return word + ": -"
	}
	return word + ": " + strings.Join(synonyms, ", ")
}
