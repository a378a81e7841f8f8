// Package remote is an HTTP client for a running calcpad widget server.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors carrying the HTTP
// method, path, status text and the server's message.
package remote
