// Package core provides the cell, style and geometry types shared by the
// renderer packages and the terminal backends.
package core
