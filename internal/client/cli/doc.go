// Package cli implements the interactive Blogify terminal client: a small
// REPL over the auth, blog, and feed layers. Handlers do the prompting and
// printing; all data-flow logic lives below in internal/client.
package cli
