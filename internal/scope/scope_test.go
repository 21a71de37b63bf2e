package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akshaygopinath16/Doddamagge/internal/models"
)

func TestPayments_AdminSeesAll(t *testing.T) {
	t.Parallel()

	v := Payments(models.RoleAdmin, "boss")
	assert.True(t, v.All)
	assert.True(t, v.Allows("alice"))
	assert.True(t, v.Allows("bob"))
}

func TestPayments_UserSeesOwn(t *testing.T) {
	t.Parallel()

	v := Payments(models.RoleUser, "alice")
	assert.False(t, v.All)
	assert.Equal(t, "username", v.Column)
	assert.Equal(t, "alice", v.Value)

	assert.True(t, v.Allows("alice"))
	assert.False(t, v.Allows("bob"))
	assert.False(t, v.Allows("Alice"), "matching is case-sensitive")
	assert.False(t, v.Allows(""), "orphaned references never match")
}

func TestEvents_AdminSeesAll(t *testing.T) {
	t.Parallel()

	v := Events(models.RoleAdmin)
	assert.True(t, v.All)
	assert.True(t, v.Allows(models.EventPending))
}

func TestEvents_UserSeesApprovedOnly(t *testing.T) {
	t.Parallel()

	v := Events(models.RoleUser)
	assert.False(t, v.All)
	assert.Equal(t, "status", v.Column)
	assert.True(t, v.Allows(models.EventApproved))
	assert.False(t, v.Allows(models.EventPending))
}

func TestVisibility_DerivedPerCall(t *testing.T) {
	t.Parallel()

	// Two callers must never share a restriction.
	alice := Payments(models.RoleUser, "alice")
	bob := Payments(models.RoleUser, "bob")
	assert.NotEqual(t, alice.Value, bob.Value)
}
