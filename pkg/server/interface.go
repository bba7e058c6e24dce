/*
Package server implements msgpack IPC for sequence analysis.

Clients write a stream of msgpack maps to stdin and read one msgpack map per
request from stdout. On start the server emits a ready status:

	{"status": "ready"}

Every request carries an ID and an action; the remaining fields depend on the action:

	{"id": "f1", "action": "frequency", "s": "AGATAGATC", "k": 3, "n": 5}
	{"id": "m1", "action": "motif", "s": "GATTACA", "p": "ATT"}
	{"id": "d1", "action": "mutation", "a": "KITTEN", "b": "SITTING"}
	{"id": "h1", "action": "health"}

Responses echo the ID and include the time taken in microseconds:

	{"id": "m1", "p": "ATT", "l": [1], "c": 1, "t": 12}

A frequency request may add a prefix "x" to keep only k-mers starting with it.
A zero or missing "k" uses the configured default.

Bad requests never stop the server. They are answered with an error message
and an HTTP-like code: 400 for malformed or unknown requests, 413 for inputs
over the configured limits, 500 for anything else.

The server counts requests and reloads its config file every reload_every requests.
*/
package server

import (
	"github.com/bastiangx/seqserve/pkg/analysis"
)

// Request is the union of all request fields.
type Request struct {
	ID       string `msgpack:"id"`
	Action   string `msgpack:"action"`
	Sequence string `msgpack:"s,omitempty"`
	K        int    `msgpack:"k,omitempty"`
	Top      int    `msgpack:"n,omitempty"`
	Prefix   string `msgpack:"x,omitempty"`
	Pattern  string `msgpack:"p,omitempty"`
	A        string `msgpack:"a,omitempty"`
	B        string `msgpack:"b,omitempty"`
}

// FrequencyResponse answers a frequency request.
type FrequencyResponse struct {
	ID string `msgpack:"id"`
	analysis.FrequencyResult
	TimeTaken int64 `msgpack:"t"`
}

// MotifResponse answers a motif request.
type MotifResponse struct {
	ID string `msgpack:"id"`
	analysis.MotifResult
	TimeTaken int64 `msgpack:"t"`
}

// MutationResponse answers a mutation request.
type MutationResponse struct {
	ID string `msgpack:"id"`
	analysis.MutationResult
	TimeTaken int64 `msgpack:"t"`
}

// StatusResponse is sent on start and for health checks.
type StatusResponse struct {
	ID       string `msgpack:"id,omitempty"`
	Status   string `msgpack:"status"`
	Requests int    `msgpack:"requests,omitempty"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

const (
	ActionFrequency = "frequency"
	ActionMotif     = "motif"
	ActionMutation  = "mutation"
	ActionHealth    = "health"
)

const (
	CodeBadRequest    = 400
	CodeTooLarge      = 413
	CodeInternalError = 500
)
