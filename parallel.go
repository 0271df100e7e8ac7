package globwalk

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ExecuteParallel returns the same paths, in the same order, as
// ExecuteContext, but walks the subdirectories of the root concurrently. At
// most the number of subtrees set by WithParallelism are walked at once.
//
// Each subtree gets its own copy of the frame stacks taken at the root, so
// the workers share nothing but src, which must be safe for concurrent use.
// On the first error the remaining workers are cancelled and that error is
// returned.
//
// The gain depends on how evenly files are spread under the root; for small
// trees the extra goroutines cost more than they save.
func (m *Matcher) ExecuteParallel(ctx context.Context, src Source) ([]string, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.parallelism)

	root := m.newWalker(gctx, src, false)
	subdirs, err := root.enter("")
	defer root.leave()
	if err != nil {
		return nil, err
	}

	// one result slot per subtree so the merge keeps the sequential order
	results := make([][]Match, len(subdirs))
	for i, name := range subdirs {
		i, name := i, name
		w := root.fork()
		g.Go(func() error {
			w.trail = append(w.trail, name)
			if err := w.walk(name); err != nil {
				return err
			}
			results[i] = w.matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := len(root.matches)
	for _, r := range results {
		total += len(r)
	}
	merged := make([]Match, 0, total)
	merged = append(merged, root.matches...)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return matchPaths(merged), nil
}
