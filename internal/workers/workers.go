package workers

// Workers keeps track of every job the client has started.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers w so StopAll reaches it.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// StopAll stops the jobs in reverse registration order.
func (w *Workers) StopAll() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
