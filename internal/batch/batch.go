// Package batch expands CLI arguments into sheet paths and runs a
// bounded worker pool over them.
package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/maruel/natural"
)

func isImage(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tif", ".tiff":
		return true
	default:
		return false
	}
}

// Collect expands files, directories and globs into a flat list of
// image paths, natural-sorted and deduped. Arguments that match
// nothing are skipped; an empty result is an error.
func Collect(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		// glob
		if strings.ContainsAny(a, "*?[]") {
			matches, _ := filepath.Glob(a)
			for _, m := range matches {
				out = appendPath(out, m)
			}
			continue
		}

		// path (dir or file)
		out = appendPath(out, a)
	}

	// natural sort
	sort.SliceStable(out, func(i, j int) bool { return natural.Less(out[i], out[j]) })

	if len(out) == 0 {
		return nil, fmt.Errorf("no input sheets found")
	}

	// dedupe
	dedup := out[:0]
	var last string
	for _, p := range out {
		if p != last {
			dedup = append(dedup, p)
			last = p
		}
	}
	return dedup, nil
}

func appendPath(out []string, p string) []string {
	fi, err := os.Stat(p)
	if err != nil {
		return out
	}
	if fi.IsDir() {
		filepath.WalkDir(p, func(sub string, d fs.DirEntry, err error) error {
			if err == nil && !d.IsDir() && isImage(sub) {
				out = append(out, sub)
			}
			return nil
		})
		return out
	}
	if isImage(p) {
		out = append(out, p)
	}
	return out
}

// Run feeds items to fn across a pool of workers and waits for the
// pool to drain. The first error reported by any worker is returned;
// remaining items still run to completion.
func Run[T any](items []T, workers int, fn func(T) error) error {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan T)
	errs := make(chan error, len(items))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for it := range jobs {
				if err := fn(it); err != nil {
					errs <- err
				}
			}
		}()
	}

	for _, it := range items {
		jobs <- it
	}
	close(jobs)
	wg.Wait()
	close(errs)

	// closed empty channel yields nil
	return <-errs
}
