// Package status records and lists client-reported status checks.
package status
