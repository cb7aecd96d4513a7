// Package enums provides type-safe enumeration types for the tracker.
//
// The enum types are defined as unexported integer types in this file, and the go:generate
// directives invoke go-pkgz/enum to create the exported types (*_enum.go) with string
// conversion, parsing and text marshaling.
//
// Status is a per-job classification, Tab is a view filter. They are separate types on purpose,
// an untagged job is never confused with the "all" tab.
//
// To regenerate the enum types after modifications:
//
//	go generate ./app/tracker/enums
package enums

//go:generate go run github.com/go-pkgz/enum@latest -type status -lower
//go:generate go run github.com/go-pkgz/enum@latest -type tab -lower

// status represents the classification of a job application.
// Use the exported Status type and its constants in actual code.
type status int

const (
	statusUntagged status = iota
	statusInterview
	statusRejected
)

// tab represents the filter applied to the job list.
// Use the exported Tab type and its constants in actual code.
type tab int

const (
	tabAll tab = iota
	tabInterview
	tabRejected
)
