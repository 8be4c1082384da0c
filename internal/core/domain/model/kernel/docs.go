// Package kernel holds the value objects shared by the wizard and KYC models:
// identifiers, package dimensions, money and code/label pairs.
package kernel
