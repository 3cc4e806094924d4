package starling

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/igolaizola/starling/pkg/compose"
	"github.com/igolaizola/starling/pkg/midifile"
	"github.com/igolaizola/starling/pkg/scale"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Count        int
	Scale        string
	Key          string
	Octave       int
	OctaveRange  int
	Tracks       int
	NoteDeviance float64
	Beat         int
	MaxLength    int
	RandomBeat   bool
	Velocity     int
	Rests        bool
	Output       string
	Seed         int64
	Concurrency  int
	Debug        bool
}

// Generate builds cfg.Count melodic compositions and writes one MIDI file
// per composition to cfg.Output, named after the key, scale and index.
//
// Compositions are independent: each one seeds its own random source from
// cfg.Seed plus its index, so a fixed seed reproduces the whole batch
// regardless of the concurrency level. A zero seed uses the current time.
func Generate(ctx context.Context, cfg *Config) error {
	if cfg.Count <= 0 {
		return fmt.Errorf("starling: count must be positive, got %d: %w", cfg.Count, compose.ErrInvalidParameter)
	}
	root, err := scale.Key(cfg.Key)
	if err != nil {
		return fmt.Errorf("starling: couldn't resolve key: %w", err)
	}
	pitchSet, err := scale.Build(cfg.Scale, root, cfg.Octave, cfg.OctaveRange)
	if err != nil {
		return fmt.Errorf("starling: couldn't build scale: %w", err)
	}
	log.Printf("scale: %q %v", cfg.Scale, pitchSet)

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("starling: couldn't create output folder: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	params := compose.Params{
		PitchSet:     pitchSet,
		Tracks:       cfg.Tracks,
		NoteDeviance: cfg.NoteDeviance,
		BaseTick:     cfg.Beat,
		MaxLength:    cfg.MaxLength,
		RandomBeat:   cfg.RandomBeat,
		Velocity:     cfg.Velocity,
		Rests:        cfg.Rests,
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := 0; i < cfg.Count; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			r := rand.New(rand.NewSource(seed + int64(i)))
			c, err := compose.Build(r, params)
			if err != nil {
				return fmt.Errorf("starling: couldn't build composition %d: %w", i, err)
			}
			path := filepath.Join(cfg.Output, fmt.Sprintf("%s-%s-%d.mid", cfg.Key, cfg.Scale, i))
			if err := midifile.Write(path, c); err != nil {
				return fmt.Errorf("starling: couldn't write composition %d: %w", i, err)
			}
			if cfg.Debug {
				log.Println("wrote", path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("generated %d melodies in %s", cfg.Count, cfg.Output)
	return nil
}
