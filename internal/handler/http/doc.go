// Package http implements the REST transport of the ledger API.
//
// It wires the chi router, the session middleware guarding every /api/ path,
// request tracing and access logging, and the handlers that translate JSON
// requests into service calls and service errors into
// {"statusCode", "statusMessage"} responses.
package http
