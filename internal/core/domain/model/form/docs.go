// Package form holds the per-section inputs of the order wizard and the rules
// that decide whether a section may be submitted.
//
// Each input field is described by a Field whose Kind selects exactly one check.
// Validation walks every field of a section and collects the failures into a
// single *errs.ValidationError keyed by field name ("shippingMobile",
// "items[1].hsn"), so a caller always sees every problem at once.
//
// Numeric fields are carried as the text the user typed; they are parsed into
// decimals only after they pass their pattern.
package form
