// Package cli provides the interactive RentMyWaifu terminal client.
//
// It wires configuration, the JSON document repositories, the application
// services and an interactive REPL. The REPL plays the role of the original
// storefront page: browsing the catalog, registering and logging in,
// submitting support requests, and — for administrators — editing the
// catalog and user records and viewing the support inbox and statistics.
//
// Every service error is printed as a notification and never terminates the
// loop. The REPL is started via App.Root(ctx), which blocks until the user
// exits.
package cli
