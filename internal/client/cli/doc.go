// Package cli provides the interactive car-storage terminal client.
//
// It wires configuration, the local token slot, the API client, the session
// store and the list view-models into a REPL. Every run starts logged out.
//
// Key features:
//   - Register / Login / Logout
//   - Cars: list, sort, filter, add, edit, delete; admins choose whose cars
//     to see with "scope"
//   - Profile: view and edit an account; admins can create and delete
//     accounts and grant the admin flag
//   - Tasks: list, add, toggle, delete
//   - Export the current car view to a directory or an S3 bucket
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// stdin is closed.
package cli
