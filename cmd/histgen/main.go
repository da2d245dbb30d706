package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"histgen-go/internal/config"
	"histgen-go/internal/dataset"
	"histgen-go/internal/presenter"
	"histgen-go/pkg/normalboxmueller"
	"histgen-go/pkg/randomnormal"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal("Error reading configuration: ", err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	g := &dataset.Generator{
		Sampler:  newSampler(cfg.Sampler),
		Renderer: presenter.NewHistogramRenderer(cfg.Width, cfg.Height),
		Progress: os.Stdout,
	}
	batch := dataset.Batch{
		Count:    cfg.Number,
		ZeroFill: cfg.ZeroFill,
		Root:     cfg.Out,
	}
	spec := dataset.RenderSpec{
		Bins:   cfg.Bins,
		Format: cfg.Format,
	}

	if cfg.Single() {
		d := dataset.NewSingle(cfg.Loc, cfg.Scale, cfg.Size)
		if _, err := g.Run(batch, d, spec); err != nil {
			return err
		}
	}
	if cfg.Mixture() {
		d := dataset.NewMixture(
			dataset.Component{Loc: cfg.Loc1, Scale: cfg.Scale1, Size: cfg.Size1},
			dataset.Component{Loc: cfg.Loc2, Scale: cfg.Scale2, Size: cfg.Size2},
		)
		if _, err := g.Run(batch, d, spec); err != nil {
			return err
		}
	}
	return nil
}

// newSampler returns the process-wide sampler, seeded once.
func newSampler(name string) dataset.Sampler {
	if name == config.SamplerBoxMuller {
		return normalboxmueller.New(randomnormal.NewSource())
	}
	return randomnormal.NewTimeSeeded()
}
