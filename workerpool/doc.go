// Package workerpool provides a fixed-size pool of worker goroutines that
// execute submitted tasks and report completion through a Future.
//
// Submit enqueues a task and returns immediately; the caller later calls
// Future.Get to block until the task finishes and to observe any error it
// raised. thread_count is exposed via ThreadCount so callers such as
// engine can choose between single- and multi-threaded accumulation
// strategies (spec.md §4.4).
//
// Modeled on the semaphore-bounded worker pools used elsewhere in the
// retrieval pack (channel-based admission plus sync.WaitGroup draining),
// adapted here to a task/future shape instead of a fire-and-forget batch
// shape, since the dual-tree engine needs to wait on individual units of
// work rather than a whole batch at once.
package workerpool
