// Package cli translates command-line arguments and environment variables
// into an app.Config.
package cli
