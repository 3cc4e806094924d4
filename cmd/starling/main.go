package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/igolaizola/starling"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

// Build flags
var version = ""
var commit = ""
var date = ""

func main() {
	// Create signal based context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Launch command
	cmd := newCommand()
	if err := cmd.ParseAndRun(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *ffcli.Command {
	fs := flag.NewFlagSet("starling", flag.ExitOnError)

	return &ffcli.Command{
		ShortUsage: "starling [flags] <subcommand>",
		FlagSet:    fs,
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
		Subcommands: []*ffcli.Command{
			newVersionCommand(),
			newGenerateCommand(),
		},
	}
}

func newVersionCommand() *ffcli.Command {
	return &ffcli.Command{
		Name:       "version",
		ShortUsage: "starling version",
		ShortHelp:  "print version",
		Exec: func(ctx context.Context, args []string) error {
			v := version
			if v == "" {
				if buildInfo, ok := debug.ReadBuildInfo(); ok {
					v = buildInfo.Main.Version
				}
			}
			if v == "" {
				v = "dev"
			}
			versionFields := []string{v}
			if commit != "" {
				versionFields = append(versionFields, commit)
			}
			if date != "" {
				versionFields = append(versionFields, date)
			}
			fmt.Println(strings.Join(versionFields, " "))
			return nil
		},
	}
}

func newGenerateCommand() *ffcli.Command {
	cmd := "generate"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	_ = fs.String("config", "", "config file (optional)")

	cfg := &starling.Config{}
	fs.IntVar(&cfg.Count, "n", 10, "number of melodies to generate")
	fs.StringVar(&cfg.Scale, "scale", "major", "scale to base the melodies on")
	fs.StringVar(&cfg.Key, "key", "C", "key of the root note")
	fs.IntVar(&cfg.Octave, "octave", 0, "octave offset from the root octave")
	fs.IntVar(&cfg.OctaveRange, "octave-range", 1, "number of octaves the scale spans")
	fs.IntVar(&cfg.Tracks, "tracks", 1, "number of independent voices per file")
	fs.Float64Var(&cfg.NoteDeviance, "note-deviance", 0, "per-note probability of a semitone deviation")
	fs.IntVar(&cfg.Beat, "beat", 480, "ticks per quarter note")
	fs.IntVar(&cfg.MaxLength, "max-length", 16, "phrase length in beats")
	fs.BoolVar(&cfg.RandomBeat, "random-beat", true, "randomize note durations")
	fs.IntVar(&cfg.Velocity, "velocity", 100, "note velocity")
	fs.BoolVar(&cfg.Rests, "rests", false, "use rest-aware note scheduling")
	fs.StringVar(&cfg.Output, "output", "output", "output folder")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed, 0 uses the current time")
	fs.IntVar(&cfg.Concurrency, "concurrency", 1, "number of concurrent generations")
	fs.BoolVar(&cfg.Debug, "debug", false, "debug mode")

	return &ffcli.Command{
		Name:       cmd,
		ShortUsage: fmt.Sprintf("starling %s [flags]", cmd),
		Options: []ff.Option{
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ff.PlainParser),
			ff.WithEnvVarPrefix("starling"),
		},
		ShortHelp: fmt.Sprintf("starling %s command", cmd),
		FlagSet:   fs,
		Exec: func(ctx context.Context, args []string) error {
			return starling.Generate(ctx, cfg)
		},
	}
}
