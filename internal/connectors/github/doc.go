// Package github fetches GitHub issues as project documents.
//
// A document reference has the form github:<owner>/<repo>#<number>. The
// issue title becomes the document title and the body, followed by its
// comments, becomes the content.
//
// # Authentication
//
// A personal access token is optional. Without one the client is limited to
// public repositories and 60 requests per hour.
//
// # Rate Limiting
//
// Requests are throttled twice: a token bucket of about 1.2 requests per
// second, and a reactive wait once X-RateLimit-Remaining drops under a
// reserve until X-RateLimit-Reset passes.
package github
