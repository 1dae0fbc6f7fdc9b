// Package domain defines the pixel grid, reports, error catalogue and service
// contracts shared across pixelvault. It contains plain types and interfaces only.
package domain
