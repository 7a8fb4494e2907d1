// Package rbac holds the application's role policy: pure, total functions
// mapping a profile (possibly nil) to a role and to capability checks.
// An absent or malformed profile degrades to "no capabilities".
package rbac

import (
	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/enum"
)

// Capability names carried in JWT claims and checked on route groups.
const (
	CapManageUsers = "manage-users"
	CapManageStock = "manage-stock"
	CapViewReports = "view-reports"
	CapManageSales = "manage-sales"
	CapViewPOS     = "view-pos"
)

// RoleOf returns the profile's role. A profile with no role set defaults to
// staff; a nil profile has no role at all.
func RoleOf(p *entity.Profile) enum.Role {
	if p == nil {
		return ""
	}
	if p.Role == "" {
		return enum.RoleStaff
	}
	return p.Role
}

// IsAdmin reports whether the profile has the admin role
func IsAdmin(p *entity.Profile) bool {
	return RoleOf(p) == enum.RoleAdmin
}

// IsStaff reports whether the profile has the staff role
func IsStaff(p *entity.Profile) bool {
	return RoleOf(p) == enum.RoleStaff
}

// CanManageUsers reports whether the profile may manage staff accounts
func CanManageUsers(p *entity.Profile) bool {
	return IsAdmin(p)
}

// CanManageStock reports whether the profile may adjust stall stock
func CanManageStock(p *entity.Profile) bool {
	return IsAdmin(p)
}

// CanViewReports reports whether the profile may view reports
func CanViewReports(p *entity.Profile) bool {
	return IsAdmin(p) || IsStaff(p)
}

// CanManageSales reports whether the profile may work with sales records
func CanManageSales(p *entity.Profile) bool {
	return IsAdmin(p) || IsStaff(p)
}

// CanViewPointOfSale reports whether the profile may operate the register.
// Staff only: admins can manage sales and reports but do not run the
// register themselves. This asymmetry is an operational rule, not an
// oversight.
func CanViewPointOfSale(p *entity.Profile) bool {
	return IsStaff(p)
}

// CapabilitySet resolves the full capability list for a profile. It is
// computed once when a token is issued and carried in the claims, so views
// never re-derive role checks ad hoc.
func CapabilitySet(p *entity.Profile) []string {
	caps := make([]string, 0, 5)
	if CanManageUsers(p) {
		caps = append(caps, CapManageUsers)
	}
	if CanManageStock(p) {
		caps = append(caps, CapManageStock)
	}
	if CanViewReports(p) {
		caps = append(caps, CapViewReports)
	}
	if CanManageSales(p) {
		caps = append(caps, CapManageSales)
	}
	if CanViewPointOfSale(p) {
		caps = append(caps, CapViewPOS)
	}
	return caps
}
