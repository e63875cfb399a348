// Package bulk implements best-effort batch processing for API operations.
//
// A batch call takes a list of input items and a function that performs the
// operation for a single item. Each item is validated and processed
// independently: a failure is recorded against the item's input position and
// never aborts the rest of the batch. The call always returns a Result that
// accounts for every input item exactly once, split into Successful values
// and Failed entries.
//
// Two execution strategies are provided:
//
//   - RunSequential processes items strictly in input order, one at a time.
//     This is the rate-limit friendly default.
//   - RunConcurrent processes all items in parallel with a counting semaphore
//     bounding the number of in-flight operations. Result ordering is still
//     by input index, never by completion time.
//
// GetSequential and GetConcurrent are the same executors specialised for
// fetch-by-ID workloads.
package bulk
