// Package cli provides the interactive blogadmin command-line client.
//
// It logs in against the mock backend, reads the password without echo,
// shows the decoded session with its permissions and lets the user browse
// posts and unread notifications.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
