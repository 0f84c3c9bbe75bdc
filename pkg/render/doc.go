// Package render draws repository cards. HTMLRenderer produces markup for the
// generated page and TerminalRenderer draws the same cards in a terminal.
// Both implement portfolio.Renderer.
package render
