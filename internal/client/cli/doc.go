// Package cli provides the interactive policy console.
//
// It wires configuration, the local session database, the REST services and
// the controllers, then runs a REPL. The App type doubles as the controllers'
// UI: navigation updates the prompt, confirmations become y/N questions and
// status messages are printed in color.
//
// Key features:
//   - Login / Signup for customers and agents, Logout, Whoami
//   - List / New / Edit / Set / Save / Cancel / Delete for every entity
//   - Profile image display and upload for customers
//   - Premium quote calculator
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
