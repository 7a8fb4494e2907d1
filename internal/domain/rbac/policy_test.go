package rbac

import (
	"testing"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/enum"
)

func adminProfile() *entity.Profile {
	return &entity.Profile{Role: enum.RoleAdmin}
}

func staffProfile() *entity.Profile {
	return &entity.Profile{Role: enum.RoleStaff}
}

func TestRoleOf(t *testing.T) {
	if got := RoleOf(nil); got != "" {
		t.Errorf("RoleOf(nil) = %q, want empty", got)
	}
	// Profile present but role unset defaults to staff.
	if got := RoleOf(&entity.Profile{}); got != enum.RoleStaff {
		t.Errorf("RoleOf(unset) = %q, want staff", got)
	}
	if got := RoleOf(adminProfile()); got != enum.RoleAdmin {
		t.Errorf("RoleOf(admin) = %q, want admin", got)
	}
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.Profile
		check   func(*entity.Profile) bool
		want    bool
	}{
		{"admin can manage users", adminProfile(), CanManageUsers, true},
		{"staff cannot manage users", staffProfile(), CanManageUsers, false},
		{"nil cannot manage users", nil, CanManageUsers, false},
		{"admin can manage stock", adminProfile(), CanManageStock, true},
		{"staff cannot manage stock", staffProfile(), CanManageStock, false},
		{"admin can view reports", adminProfile(), CanViewReports, true},
		{"staff can view reports", staffProfile(), CanViewReports, true},
		{"nil cannot view reports", nil, CanViewReports, false},
		{"admin can manage sales", adminProfile(), CanManageSales, true},
		{"staff can manage sales", staffProfile(), CanManageSales, true},
		{"unset role can manage sales", &entity.Profile{}, CanManageSales, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.profile); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// The register is staff-only even though admins can manage sales and
// reports. The asymmetry is deliberate and must not drift.
func TestPointOfSaleIsStaffOnly(t *testing.T) {
	if !CanViewPointOfSale(staffProfile()) {
		t.Error("staff should have point-of-sale access")
	}
	if CanViewPointOfSale(adminProfile()) {
		t.Error("admin should not have point-of-sale access")
	}
	if CanViewPointOfSale(nil) {
		t.Error("absent profile should not have point-of-sale access")
	}
	// ...while both roles keep manage-sales.
	if !CanManageSales(adminProfile()) || !CanManageSales(staffProfile()) {
		t.Error("both admin and staff should have manage-sales")
	}
}

func TestCapabilitySet(t *testing.T) {
	if got := CapabilitySet(nil); len(got) != 0 {
		t.Errorf("CapabilitySet(nil) = %v, want empty", got)
	}

	adminCaps := CapabilitySet(adminProfile())
	wantAdmin := []string{CapManageUsers, CapManageStock, CapViewReports, CapManageSales}
	if len(adminCaps) != len(wantAdmin) {
		t.Fatalf("admin capability set = %v, want %v", adminCaps, wantAdmin)
	}
	for i, c := range wantAdmin {
		if adminCaps[i] != c {
			t.Errorf("admin capability[%d] = %q, want %q", i, adminCaps[i], c)
		}
	}

	staffCaps := CapabilitySet(staffProfile())
	wantStaff := []string{CapViewReports, CapManageSales, CapViewPOS}
	if len(staffCaps) != len(wantStaff) {
		t.Fatalf("staff capability set = %v, want %v", staffCaps, wantStaff)
	}
	for i, c := range wantStaff {
		if staffCaps[i] != c {
			t.Errorf("staff capability[%d] = %q, want %q", i, staffCaps[i], c)
		}
	}
}
