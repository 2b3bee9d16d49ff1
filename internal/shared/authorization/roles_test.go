package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAdminRole(t *testing.T) {
	assert.Equal(t, RoleSuperAdmin, ParseAdminRole("super_admin"))
	assert.Equal(t, RoleAdmin, ParseAdminRole("admin"))
	assert.Equal(t, RoleModerator, ParseAdminRole("moderator"))
	assert.Equal(t, RoleModerator, ParseAdminRole("root"))
	assert.False(t, AdminRole("").IsValid())
}
