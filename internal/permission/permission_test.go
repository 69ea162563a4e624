package permission_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/stylesam/luxuria/internal/domain"
	"github.com/stylesam/luxuria/internal/permission"
)

func TestCanPerform(t *testing.T) {
	t.Parallel()

	selfID := uuid.New()
	otherID := uuid.New()

	self := &domain.User{ID: selfID, Role: domain.RoleUser}
	selfAdmin := &domain.User{ID: selfID, Role: domain.RoleAdmin}
	other := &domain.User{ID: otherID, Role: domain.RoleUser}

	tests := []struct {
		name string
		in   permission.Input
		want bool
	}{
		{
			name: "self role change denied for plain user",
			in: permission.Input{
				Action:     permission.ActionUpdate,
				Requester:  domain.Requester{UserID: selfID, Role: domain.RoleUser},
				Target:     self,
				RoleChange: true,
			},
			want: false,
		},
		{
			name: "self role change denied even for admin",
			in: permission.Input{
				Action:     permission.ActionUpdate,
				Requester:  domain.Requester{UserID: selfID, Role: domain.RoleAdmin},
				Target:     selfAdmin,
				RoleChange: true,
			},
			want: false,
		},
		{
			name: "cross-user role change denied for plain user",
			in: permission.Input{
				Action:     permission.ActionUpdate,
				Requester:  domain.Requester{UserID: selfID, Role: domain.RoleUser},
				Target:     other,
				RoleChange: true,
			},
			want: false,
		},
		{
			name: "cross-user role change allowed for admin",
			in: permission.Input{
				Action:     permission.ActionUpdate,
				Requester:  domain.Requester{UserID: selfID, Role: domain.RoleAdmin},
				Target:     other,
				RoleChange: true,
			},
			want: true,
		},
		{
			name: "owner may update own non-role fields",
			in: permission.Input{
				Action:    permission.ActionUpdate,
				Requester: domain.Requester{UserID: selfID, Role: domain.RoleUser},
				Target:    self,
			},
			want: true,
		},
		{
			name: "owner with empty patch is allowed",
			in: permission.Input{
				Action:    permission.ActionUpdate,
				Requester: domain.Requester{UserID: selfID, Role: domain.RoleUser},
				Target:    self,
			},
			want: true,
		},
		{
			name: "stranger may not update non-role fields",
			in: permission.Input{
				Action:    permission.ActionUpdate,
				Requester: domain.Requester{UserID: selfID, Role: domain.RoleUser},
				Target:    other,
			},
			want: false,
		},
		{
			name: "admin may update any non-role fields",
			in: permission.Input{
				Action:    permission.ActionUpdate,
				Requester: domain.Requester{UserID: selfID, Role: domain.RoleAdmin},
				Target:    other,
			},
			want: true,
		},
		{
			name: "owner may delete themself",
			in: permission.Input{
				Action:    permission.ActionDelete,
				Requester: domain.Requester{UserID: selfID, Role: domain.RoleUser},
				Target:    self,
			},
			want: true,
		},
		{
			name: "stranger may not delete others",
			in: permission.Input{
				Action:    permission.ActionDelete,
				Requester: domain.Requester{UserID: selfID, Role: domain.RoleUser},
				Target:    other,
			},
			want: false,
		},
		{
			name: "admin may delete others",
			in: permission.Input{
				Action:    permission.ActionDelete,
				Requester: domain.Requester{UserID: selfID, Role: domain.RoleAdmin},
				Target:    other,
			},
			want: true,
		},
		{
			name: "nil target denied for plain user",
			in: permission.Input{
				Action:    permission.ActionDelete,
				Requester: domain.Requester{UserID: selfID, Role: domain.RoleUser},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, permission.CanPerform(tt.in))
		})
	}
}

// The new role in the patch must never matter: only the requester's current
// role is consulted.
func TestSelfEscalationAlwaysDenied(t *testing.T) {
	t.Parallel()

	for _, role := range []domain.Role{domain.RoleUser, domain.RoleAdmin} {
		id := uuid.New()
		target := &domain.User{ID: id, Role: role}
		allowed := permission.CanPerform(permission.Input{
			Action:     permission.ActionUpdate,
			Requester:  domain.Requester{UserID: id, Role: role},
			Target:     target,
			RoleChange: true,
		})
		require.False(t, allowed, "role %s must not self-grant", role)
	}
}
