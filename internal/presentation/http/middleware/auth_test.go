package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/akosiano1/itpm-proj/internal/domain/rbac"
)

func capabilityTestRouter(capabilities []string, required string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/resource",
		func(c *gin.Context) {
			if capabilities != nil {
				c.Set("user_capabilities", capabilities)
			}
		},
		RequireCapability(required),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) },
	)
	return router
}

func TestRequireCapability(t *testing.T) {
	tests := []struct {
		name         string
		capabilities []string
		required     string
		wantStatus   int
	}{
		{
			name:         "granted capability passes",
			capabilities: []string{rbac.CapViewReports, rbac.CapManageSales},
			required:     rbac.CapViewReports,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "missing capability is forbidden",
			capabilities: []string{rbac.CapViewReports, rbac.CapManageSales},
			required:     rbac.CapManageStock,
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "admin without view-pos is kept off the register",
			capabilities: []string{rbac.CapManageUsers, rbac.CapManageStock, rbac.CapViewReports, rbac.CapManageSales},
			required:     rbac.CapViewPOS,
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "staff holds view-pos",
			capabilities: []string{rbac.CapViewReports, rbac.CapManageSales, rbac.CapViewPOS},
			required:     rbac.CapViewPOS,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "no capabilities in context is forbidden",
			capabilities: nil,
			required:     rbac.CapViewReports,
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "empty capability list is forbidden",
			capabilities: []string{},
			required:     rbac.CapViewReports,
			wantStatus:   http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := capabilityTestRouter(tt.capabilities, tt.required)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/resource", nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
