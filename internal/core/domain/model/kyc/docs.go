// Package kyc models the seller's customers whose identity documents are
// reviewed before they may ship under the CSB V regime.
//
// The package includes:
//   - Customer: the aggregate root carrying the KYC and CSB V verdicts
//   - Document: one uploaded proof with its review status
//   - Status types for KYC, CSB V and document review
//
// Key business rules:
//   - Submitting the review marks KYC Done only when there is at least one
//     document and every document is Approved
//   - A completed KYC records the day it was verified
package kyc
