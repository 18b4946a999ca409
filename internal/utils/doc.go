// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes the friend code generator and the time-ordered id generator.
package utils
