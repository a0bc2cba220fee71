// Package validation holds the explicit per-entity request validators. Each
// validator collects every failed rule instead of stopping at the first, so
// the client sees the full list of problems at once.
package validation

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Length rules count characters, not bytes, so multibyte names are measured
// the way a user reads them.
const (
	nameMinLen = 2
	nameMaxLen = 255
	cityMaxLen = 100
)

// SupplierInput checks a supplier creation payload. It returns nil when the
// input is valid.
func SupplierInput(name, city string) []string {
	var errs []string

	switch {
	case name == "":
		errs = append(errs, "Supplier name is required")
	case utf8.RuneCountInString(name) < nameMinLen:
		errs = append(errs, "Supplier name must be at least 2 characters")
	case utf8.RuneCountInString(name) > nameMaxLen:
		errs = append(errs, "Supplier name cannot exceed 255 characters")
	}

	switch {
	case city == "":
		errs = append(errs, "City is required")
	case utf8.RuneCountInString(city) < nameMinLen:
		errs = append(errs, "City must be at least 2 characters")
	case utf8.RuneCountInString(city) > cityMaxLen:
		errs = append(errs, "City cannot exceed 100 characters")
	}

	return errs
}

// InventoryInput checks an inventory item creation payload. Quantity zero is
// allowed (it is the column default); prices must be positive and carry at
// most 2 decimal places, anything finer is rejected rather than rounded.
func InventoryInput(supplierID int64, productName string, quantity int, price decimal.Decimal) []string {
	var errs []string

	if supplierID <= 0 {
		errs = append(errs, "Supplier ID must be positive")
	}

	switch {
	case productName == "":
		errs = append(errs, "Product name is required")
	case utf8.RuneCountInString(productName) < nameMinLen:
		errs = append(errs, "Product name must be at least 2 characters")
	case utf8.RuneCountInString(productName) > nameMaxLen:
		errs = append(errs, "Product name cannot exceed 255 characters")
	}

	if quantity < 0 {
		errs = append(errs, "Quantity must be greater than or equal to 0")
	}

	if price.Sign() <= 0 {
		errs = append(errs, "Price must be greater than 0")
	} else if price.Exponent() < -2 {
		errs = append(errs, "Price can have at most 2 decimal places")
	}

	return errs
}
