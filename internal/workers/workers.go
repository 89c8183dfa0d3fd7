package workers

// Workers aggregates independent background workers so the application can
// launch them with a single call.
type Workers struct {
	workers []Worker
}

// NewWorkers collects the given workers into an aggregate. The run order
// follows the argument order.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every registered worker in order. Workers that need to outlive
// the call are expected to spawn their own goroutines.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// WorkerFunc adapts a plain function to the [Worker] interface, the same way
// http.HandlerFunc adapts functions to http.Handler.
type WorkerFunc func()

// Run calls f.
func (f WorkerFunc) Run() {
	f()
}
