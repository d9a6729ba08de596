// Command embedgen generates allocation-free embedproto message types from
// .proto files.
//
//	embedgen [-config embedgen.toml] [-I dir]... [-out dir] file.proto...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/anirudhraja/embedproto"
	"github.com/anirudhraja/embedproto/codegen"
	"github.com/anirudhraja/embedproto/registry"
	"github.com/anirudhraja/embedproto/schema"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "embedgen: %v\n", err)
		os.Exit(1)
	}
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, string(filepath.ListSeparator)) }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("embedgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "generator config file (.toml, .yaml or .yml)")
	var includes stringList
	fs.Var(&includes, "I", "directory searched for .proto files and imports (repeatable)")
	out := fs.String("out", "", "output directory (default: next to each .proto file)")
	pkg := fs.String("package", "", "Go package name of the generated files")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: embedgen [flags] file.proto...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no .proto files given")
	}

	opts := defaultOptions()
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &opts); err != nil {
			return err
		}
	}
	if err := applyEnv(&opts, os.Getenv); err != nil {
		return err
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "I":
			opts.protoPaths = includes
		case "out":
			opts.out = *out
		case "package":
			opts.gen.Package = *pkg
		case "log-level":
			level, err := zerolog.ParseLevel(*logLevel)
			if err != nil {
				flagErr = fmt.Errorf("-log-level: %w", err)
				return
			}
			opts.logLevel = level
		}
	})
	if flagErr != nil {
		return flagErr
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(stderr), NoColor: true}).
		Level(opts.logLevel).
		With().Timestamp().Str("component", "embedgen").Logger()
	embedproto.SetLogger(log)

	return generate(ctx, log, opts, fs.Args())
}

// generate loads every file first, since the registry is not safe for
// concurrent loads, then generates and writes them in parallel
func generate(ctx context.Context, log zerolog.Logger, opts options, protoFiles []string) error {
	reg := registry.NewRegistry(opts.protoPaths...)
	files := make([]*schema.ProtoFile, 0, len(protoFiles))
	for _, name := range protoFiles {
		file, err := reg.LoadFile(name)
		if err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
		log.Debug().Str("proto", name).Str("path", file.Path).Int("messages", len(file.Messages)).Msg("loaded")
		files = append(files, file)
	}

	if opts.out != "" {
		if err := os.MkdirAll(opts.out, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	gen := codegen.New(opts.gen, reg)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := gen.Generate(file)
			if err != nil {
				return fmt.Errorf("generate %s: %w", file.Name, err)
			}

			dir := opts.out
			if dir == "" {
				dir = filepath.Dir(file.Path)
			}
			target := filepath.Join(dir, codegen.OutputName(file.Name))
			if err := os.WriteFile(target, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			log.Info().Str("proto", file.Name).Str("output", target).Int("bytes", len(src)).Msg("generated")
			return nil
		})
	}
	return g.Wait()
}
