// Package model holds the domain entities and the request payloads that
// carry them across the HTTP boundary.
package model
