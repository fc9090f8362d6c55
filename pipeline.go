package aya

import "sync"

const defaultWorkers = 1

// task runs fn over contiguous chunks of [0, size), one goroutine per chunk.
// fn receives the chunk number, which callers use to own a result slot without locking.
func task(workersCount, size int, fn func(worker, start, end int)) {
	if workersCount < 1 {
		workersCount = defaultWorkers
	}
	if size == 0 {
		return
	}
	if workersCount == 1 {
		fn(0, 0, size)
		return
	}

	var wg sync.WaitGroup
	chunkSize := (size + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start := workerID * chunkSize
		if start >= size {
			break
		}
		wg.Add(1)
		go func(worker, start, end int) {
			defer wg.Done()
			fn(worker, start, end)
		}(workerID, start, min(start+chunkSize, size))
	}
	wg.Wait()
}

// mapSlice writes fn(src[i]) into dst[i]. dst and src may be the same slice.
func mapSlice[T any](workersCount int, dst, src []T, fn func(T) T) {
	if len(dst) != len(src) {
		panic("aya: destination and source lengths differ")
	}
	task(workersCount, len(src), func(_, start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src[i])
		}
	})
}
