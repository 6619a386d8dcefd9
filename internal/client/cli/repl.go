package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the loop dispatches to. The real App
// satisfies it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Profile(ctx context.Context) error
	Notifications(ctx context.Context) error
	Billing(ctx context.Context) error
	Plans(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Ping(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands and routes them to screens.
//
// Routing rules:
//   - Screens that need a session (profile, notifications, billing, plans,
//     whoami, logout) are protected: without a session the user is sent to
//     the login screen instead, and the original command is discarded.
//   - login/signup are only reachable while logged out; an authenticated
//     user is turned away.
//
// The loop exits on EOF or on "exit"/"quit". Command handlers report their
// own errors; the loop never aborts because a screen failed.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Account client (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("acct %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, notifications, billing, plans, whoami, ping, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, ping, exit")
			}

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			_ = a.Login(ctx)

		case "signup":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			_ = a.Signup(ctx)

		case "profile":
			if redirected(ctx, a) {
				continue
			}
			_ = a.Profile(ctx)

		case "notifications":
			if redirected(ctx, a) {
				continue
			}
			_ = a.Notifications(ctx)

		case "billing":
			if redirected(ctx, a) {
				continue
			}
			_ = a.Billing(ctx)

		case "plans":
			if redirected(ctx, a) {
				continue
			}
			_ = a.Plans(ctx)

		case "whoami":
			if redirected(ctx, a) {
				continue
			}
			_ = a.WhoAmI(ctx)

		case "logout":
			if redirected(ctx, a) {
				continue
			}
			_ = a.Logout(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// redirected sends an unauthenticated user to the login screen. The
// command that triggered the redirect is dropped, not replayed.
func redirected(ctx context.Context, a execIface) bool {
	if a.isLoggedIn() {
		return false
	}
	printlnFn("You need to log in first.")
	_ = a.Login(ctx)
	return true
}
