// Package account defines the user account model and its MongoDB store.
package account
