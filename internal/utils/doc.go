// Package utils provides general-purpose helpers shared by the client
// packages: the resty-backed HTTP client and base URL normalisation, request
// id generation and player UUID normalisation, and unverified JWT expiry
// inspection.
package utils
