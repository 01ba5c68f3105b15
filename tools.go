//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They pin Go-based tools invoked via
// `go generate` (mockgen for the mocks/ package) in go.mod / go.sum.
package team_lab

import (
	_ "go.uber.org/mock/mockgen"
)
