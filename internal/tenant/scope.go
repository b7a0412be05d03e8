// Package tenant keeps every company-owned query inside its company.
package tenant

import "gorm.io/gorm"

// Scope filters a single-table query by company.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return ScopeAs("", companyID)
}

// ScopeAs filters by the company column of the aliased table, for joins
// where employees also carry a company_id.
func ScopeAs(alias, companyID string) func(db *gorm.DB) *gorm.DB {
	column := "company_id"
	if alias != "" {
		column = alias + "." + column
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", companyID)
	}
}
