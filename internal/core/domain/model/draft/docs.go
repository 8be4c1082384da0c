// Package draft provides the order draft aggregate: everything a seller has
// entered into the order wizard so far plus the cursor that tracks where they
// are in it.
//
// The package includes:
//   - Draft: the aggregate root owning the form data and the cursor
//   - Section: the ordered wizard sections, Consignor through PlaceOrder
//   - ShippingOption: a carrier quote the seller can pick
//   - OrderPlaced: the event raised when a draft is turned into an order
//
// Key business rules:
//   - A draft always holds at least one item
//   - activeStep only records how far the seller got; sections at or after it
//     have not been submitted yet
//   - Billing mirrors shipping while sameAsBilling is set
//   - Derived figures (volumetric and billed weight, totals) are never stored
//
// Draft setters do not validate the form; deciding whether a section may be
// submitted belongs to the section controller in the domain services package.
package draft
