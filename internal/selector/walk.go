package selector

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/multierr"
)

// walkConfig keeps discovery single-threaded.
var walkConfig = fastwalk.Config{NumWorkers: 1}

// Walk returns every regular file under root accepted by sel, in lexical
// order. A root that is itself a regular file is matched on its own.
// Directories are traversed, never matched, and symlinks are not followed.
//
// Directories are read one at a time by a single walker. Errors reading
// individual directories are combined into the returned error; the paths
// found elsewhere are still returned.
func Walk(root string, sel *Selector) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		if info.Mode().IsRegular() && sel.Match(root) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var (
		mu    sync.Mutex
		paths []string
		errs  error
	)
	walkErr := fastwalk.Walk(&walkConfig, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			mu.Lock()
			errs = multierr.Append(errs, fmt.Errorf("walking %s: %w", path, err))
			mu.Unlock()
			return nil
		}
		if !d.Type().IsRegular() || !sel.Match(path) {
			return nil
		}
		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		return nil
	})
	if walkErr != nil {
		errs = multierr.Append(errs, fmt.Errorf("walking %s: %w", root, walkErr))
	}

	sort.Strings(paths)
	return paths, errs
}
