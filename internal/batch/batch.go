package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-sif/valido/internal/util"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// Op is applied to each item of a batch
type Op func(ctx context.Context, item string) error

// Run applies op to every item, with at most parallelism concurrent calls (unlimited if < 1).
// Unlike a plain errgroup, a failing item does not stop the others: every failure is
// collected, labelled with its item, and returned as a multierror in item order.
// Cancellation of ctx stops items which have not started yet.
func Run(ctx context.Context, items []string, parallelism int, op Op) error {
	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	var lock sync.Mutex
	failures := make([]error, len(items))
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := op(gctx, item); err != nil {
				lock.Lock()
				failures[i] = fmt.Errorf("%s: %w", item, err)
				lock.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var result *multierror.Error
	for _, err := range failures {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = util.FormatMultiError
	return result
}
