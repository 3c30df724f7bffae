package cmd

import "sync"

// processPaths fans the files out over a bounded worker pool. Concurrency is
// across files only; each file is processed start to finish by one goroutine.
func processPaths(paths []string, maxWorkers int, fn func(path string)) {
	if len(paths) == 0 {
		return
	}
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if len(paths) < maxWorkers {
		maxWorkers = len(paths)
	}

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	for _, p := range paths {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			fn(p)
		}(p)
	}
	wg.Wait()
}
