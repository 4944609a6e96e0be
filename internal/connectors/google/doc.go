// Package google holds the shared plumbing of the Google source adapters:
// service factories, auth options, error mapping and rate limiting.
//
// The sheets subpackage reads the roadmap spreadsheet and the docs
// subpackage exports project documents from Drive. Both take a service
// built here:
//
//	svc, err := google.NewSheetsService(ctx, provider)
//
// The provider's auth method selects the credential: an API key for
// public sheets, a bearer token (drive.readonly and
// spreadsheets.readonly scopes) for private ones, or none.
package google
