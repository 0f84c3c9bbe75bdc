// Package portfolio turns a user's repository listing into the card list shown
// to visitors: it loads and orders repositories, derives the language filter,
// applies the search and language filters and drives a Renderer.
package portfolio
