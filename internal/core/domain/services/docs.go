// Package services provides domain services that work across the wizard's
// aggregates and value objects without belonging to any single one of them.
//
// The package includes:
//   - SectionController: moves a draft through the wizard sections, validating
//     each section before it is accepted
//   - Calculator: derives weights and totals from the form data
//
// Both are pure: they perform no I/O and keep no state between calls.
package services
