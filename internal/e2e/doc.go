// Package e2e drives the whole service over http against dockerized
// postgres and redis. Run with -tags integration_test.
package e2e
