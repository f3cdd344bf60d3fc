package domain_test

import (
	"testing"

	"go-leave/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Role
	}{
		{"Admin", domain.RoleAdmin},
		{" manager ", domain.RoleManager},
		{"EMPLOYEE", domain.RoleEmployee},
		{"", domain.RoleUnknown},
		{"contractor", domain.RoleUnknown},
		{"error", domain.RoleUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseRole(tt.in))
		})
	}
}

func TestRole_CanDecide(t *testing.T) {
	assert.True(t, domain.RoleAdmin.CanDecide())
	assert.True(t, domain.RoleManager.CanDecide())
	assert.False(t, domain.RoleEmployee.CanDecide())
	assert.False(t, domain.RoleUnknown.CanDecide())
	assert.False(t, domain.RoleError.CanDecide())
}

func TestRole_Display(t *testing.T) {
	assert.Equal(t, "Manager", domain.RoleManager.Display())
	assert.Equal(t, "", domain.Role("").Display())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"SL", "VAC", "PL"}, domain.SplitList("SL, VAC,,PL "))
	assert.Empty(t, domain.SplitList(""))
}
