// Package panel implements the API demo panel core: backend-address
// selection and the request/response/error state machine, independent of the
// terminal UI that renders it.
//
// # State Machine
//
// The outcome moves through four phases:
//
//	Idle ──trigger──> Loading ──2xx + JSON──> Success
//	                     │
//	                     └──non-2xx / transport / decode──> Failure
//
// Any trigger from any phase moves to Loading synchronously and clears the
// prior result and error. Nothing leads back to Idle once an action has been
// taken, and no phase is terminal: the panel accepts new triggers from
// Success and Failure alike. After any completed attempt exactly one of
// {Result, Err} is non-empty.
//
// # Overlapping Requests
//
// A trigger does not abort an earlier in-flight request. The Store tags each
// attempt with a monotonically increasing sequence number and ignores
// resolutions carrying a stale one, so the latest issued request wins rather
// than whichever happens to resolve last. Busy exposes the in-flight state so
// the UI can decline new triggers while a request is outstanding; the store
// itself does not forbid overlap.
//
// # Address Selection
//
// Selection offers a fixed set of well-known addresses, an externally
// supplied default, and free-text overrides. Last write wins. Selecting an
// address never issues an HTTP call; it only changes the URL the next
// triggered action uses. The address is captured when Trigger is called, so a
// selection change cannot redirect an attempt already started.
package panel
