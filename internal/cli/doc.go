// Package cli turns command-line arguments into a validated app.Config.
// Every input check lives here, so by the time the app starts no invalid
// platform token or log setting can cause a side effect. Process-level
// concerns such as exit codes are expressed through ExitError.
package cli
