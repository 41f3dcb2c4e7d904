package source

import (
	"context"
	"fmt"

	"github.com/dhamidi/classread/classfile"
	"golang.org/x/sync/errgroup"
)

// Result pairs a class buffer with its decoded form or its decode error.
type Result struct {
	Name string
	File *classfile.ClassFile
	Err  error
}

// Decode decodes every class with at most workers decodes in flight
// (unlimited when workers <= 0). Results are in input order. Per-class
// failures are reported in Result.Err; the returned error is only set
// when ctx ends first.
func Decode(ctx context.Context, classes []Class, workers int) ([]Result, error) {
	results := make([]Result, len(classes))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, class := range classes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cf, err := classfile.Decode(class.Data)
			if err != nil {
				log.Debugf("decode %s: %s", class.Name, err)
				err = fmt.Errorf("%s: %w", class.Name, err)
			}
			results[i] = Result{Name: class.Name, File: cf, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Load opens every location and decodes what it finds. It stops at the
// first location that cannot be opened or class that cannot be decoded.
func Load(ctx context.Context, locations []string, workers int) ([]Result, error) {
	var classes []Class
	for _, location := range locations {
		found, err := Open(location)
		if err != nil {
			return nil, err
		}
		classes = append(classes, found...)
	}
	results, err := Decode(ctx, classes, workers)
	if err != nil {
		return nil, err
	}
	if err := FirstError(results); err != nil {
		return nil, err
	}
	return results, nil
}

func FirstError(results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
