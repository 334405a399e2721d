// Package goalsdk provides the shared wire types for the goaltrack HTTP API
// and a client for calling it. The server handlers and the client both build
// on these types so the two cannot drift apart.
//
// Two layers are exposed:
//
//   - Client: stateless request/response calls against a goaltrack server.
//   - Session: a stateful layer over Client holding the bearer token and a
//     local cache of the caller's task list. Toggles apply optimistically and
//     revert on failure; creates, updates and deletes apply only after the
//     server confirms.
package goalsdk
