// Package connectors holds the source adapters that feed a sync run and the
// Router that combines them into a single driven.SourceCapability.
//
// Document IDs are routed by prefix:
//
//	github:<owner>/<repo>#<n>   GitHub issue
//	file:<path>                 local text file
//	gdoc:<id> or <id>           Google Drive file
package connectors
