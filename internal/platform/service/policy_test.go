package service

import (
	"testing"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/stretchr/testify/require"
)

func TestCanMatrix(t *testing.T) {
	t.Parallel()

	observer := domain.User{ID: "u-obs", Roles: domain.RoleSet{domain.RoleObserver}}
	actionOwner := domain.User{ID: "u-act", Roles: domain.RoleSet{domain.RoleActionOwner}}
	manager := domain.User{ID: "u-mgr", Roles: domain.RoleSet{domain.RoleManager}}
	super := domain.User{ID: "u-sup", Superuser: true}
	noRoles := domain.User{ID: "u-none"}

	assigned := &domain.Observation{AssignedTo: "u-act"}
	unassigned := &domain.Observation{}

	cases := []struct {
		name   string
		actor  domain.User
		action Action
		obs    *domain.Observation
		want   bool
	}{
		{"observer creates", observer, ActionCreate, nil, true},
		{"manager creates", manager, ActionCreate, nil, true},
		{"action owner creates", actionOwner, ActionCreate, nil, true},
		{"roleless cannot create", noRoles, ActionCreate, nil, false},
		{"roleless cannot view", noRoles, ActionView, assigned, false},
		{"observer views", observer, ActionView, assigned, true},
		{"assignee rectifies", actionOwner, ActionRectify, assigned, true},
		{"non-assignee cannot rectify", actionOwner, ActionRectify, unassigned, false},
		{"manager cannot rectify", manager, ActionRectify, assigned, false},
		{"manager verifies", manager, ActionVerify, assigned, true},
		{"observer cannot verify", observer, ActionVerify, assigned, false},
		{"manager archives", manager, ActionArchive, assigned, true},
		{"manager restores", manager, ActionRestore, assigned, true},
		{"observer cannot archive", observer, ActionArchive, assigned, false},
		{"manager cannot delete", manager, ActionDelete, assigned, false},
		{"superuser deletes", super, ActionDelete, assigned, true},
		{"superuser does everything", super, ActionRectify, unassigned, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Can(tc.actor, tc.action, tc.obs))
		})
	}
}

func TestRequireTenant(t *testing.T) {
	t.Parallel()

	member := domain.User{ID: "u1", OrganizationID: "org-a", Roles: domain.RoleSet{domain.RoleObserver}}
	super := domain.User{ID: "u2", Superuser: true}
	orgless := domain.User{ID: "u3", Roles: domain.RoleSet{domain.RoleObserver}}

	require.NoError(t, requireTenant(member, "org-a"))
	require.ErrorIs(t, requireTenant(member, "org-b"), ErrForbidden)
	require.ErrorIs(t, requireTenant(orgless, "org-a"), ErrForbidden)
	require.NoError(t, requireTenant(super, "org-a"))
}
