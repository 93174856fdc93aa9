package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/viewspace/internal/logging"
)

// ErrNoDocuments is returned when Load is called without paths.
var ErrNoDocuments = errors.New("no documents to load")

const maxParallelLoads = 8

// Open reads a single file into a Document.
func Open(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return New(filepath.Base(abs), "file://"+abs, string(data)), nil
}

// Load reads every path concurrently and returns the documents in the
// order given. The first failure cancels the remaining reads.
func Load(ctx context.Context, paths []string) ([]*Document, error) {
	log := logging.FromContext(ctx)
	if len(paths) == 0 {
		return nil, ErrNoDocuments
	}

	docs := make([]*Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := Open(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	log.Debug().Int("count", len(docs)).Msg("documents loaded")
	return docs, nil
}
