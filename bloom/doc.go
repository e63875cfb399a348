// Package bloom provides a client for the Bloom Growth API.
//
// Bloom Growth is a meeting and goal tracking platform built around L10
// meetings, goals ("rocks"), todos, issues, headlines and scorecards. This
// package implements a typed Go client for all of those resources.
//
// # Usage
//
// Create a client with an API key and call operations through the resource
// services:
//
//	client, err := bloom.NewClient(apiKey, bloom.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	todos, err := client.Todos.List(ctx, 0, 0)
//
// Operations that act on behalf of a user accept a user ID of 0 to mean the
// authenticated user; the client resolves and caches that identity on first
// use.
//
// # Bulk operations
//
// Goals, todos and issues support best-effort batch creation, and meetings
// support batch retrieval. Batch calls never fail because of a single bad
// item: they return a bulk.Result pairing the successfully created records
// with per-item errors keyed by input position.
//
//	result := client.Goals.CreateMany(ctx, []bloom.GoalInput{
//		{Title: bloom.String("Q1 revenue target"), MeetingID: bloom.Int64(123)},
//		{Title: bloom.String("Product launch"), MeetingID: bloom.Int64(123)},
//	})
//	for _, fail := range result.Failed {
//		log.Printf("goal %d failed: %s", fail.Index, fail.Message)
//	}
//
// The Concurrent variants run the same workload with a bounded number of
// requests in flight.
//
// # Errors
//
// API failures are returned as *APIError with the HTTP status code and
// response body, plus classification helpers such as IsNotFound and
// IsUnauthorized.
package bloom
