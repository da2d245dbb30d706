package dataset

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Renderer encodes a histogram of samples with the given bin count.
type Renderer interface {
	Render(samples []float64, bins int, format string) ([]byte, error)
}

// Batch is one run of Count artifacts into the label directory under Root.
type Batch struct {
	Count    int
	ZeroFill int
	Root     string
}

// Artifact is a written histogram image.
type Artifact struct {
	Index        int
	Path         string
	Distribution Distribution
	Render       RenderSpec
}

// Generator runs batches: draw, render, name, write, one artifact at a time.
type Generator struct {
	Sampler  Sampler
	Renderer Renderer
	Progress io.Writer   // receives "{index+1}/{count} {path}" per artifact
	Logger   *log.Logger // defaults to log.Default()
}

// Run writes b.Count artifacts for d and returns them in index order. The label
// directory is created even when b.Count is zero. The first error stops the
// batch; artifacts written before it stay on disk.
func (g *Generator) Run(b Batch, d Distribution, r RenderSpec) ([]Artifact, error) {
	logger := g.Logger
	if logger == nil {
		logger = log.Default()
	}
	runID := uuid.NewString()

	dir, err := EnsureDirectory(d.Shape, b.Root)
	if err != nil {
		return nil, &Error{Kind: ErrFilesystem, Index: -1, Path: DirectoryFor(d.Shape, b.Root), Err: err}
	}
	logger.Printf("batch %s: %s distribution, %d artifacts into %s", runID, d.Shape, b.Count, dir)

	artifacts := make([]Artifact, 0, b.Count)
	for i := range b.Count {
		a, err := g.generate(i, dir, b, d, r)
		if err != nil {
			logger.Printf("batch %s: stopped after %d of %d artifacts", runID, i, b.Count)
			return artifacts, err
		}
		artifacts = append(artifacts, a)
		if g.Progress != nil {
			fmt.Fprintf(g.Progress, "%d/%d %s\n", i+1, b.Count, a.Path)
		}
	}

	logger.Printf("batch %s: done, %d artifacts", runID, len(artifacts))
	return artifacts, nil
}

func (g *Generator) generate(index int, dir string, b Batch, d Distribution, r RenderSpec) (Artifact, error) {
	samples := Draw(g.Sampler, d)

	data, err := g.Renderer.Render(samples, r.Bins, r.Format)
	if err != nil {
		return Artifact{}, &Error{Kind: ErrRender, Index: index, Err: err}
	}

	path := filepath.Join(dir, FilenameFor(index, b.ZeroFill, d, r))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Artifact{}, &Error{Kind: ErrFilesystem, Index: index, Path: path, Err: err}
	}

	return Artifact{
		Index:        index,
		Path:         path,
		Distribution: d,
		Render:       r,
	}, nil
}
