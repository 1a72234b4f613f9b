// Package wled is a thin client for the WLED JSON HTTP API.
//
// It covers the /json/state endpoint only: reading the current state and
// posting partial state patches (power, brightness). The device applies a
// patch without requiring the full state document.
package wled
