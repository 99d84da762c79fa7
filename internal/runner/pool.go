package runner

import "sync"

type Job func() error

// RunPool executes jobs with at most maxWorkers concurrently. The returned
// slice has one entry per job, in job order; nil means the job succeeded.
func RunPool(maxWorkers int, jobs []Job) []error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)

	for i, job := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, j Job) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = j()
		}(i, job)
	}
	wg.Wait()
	return errs
}
