package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore/internal/domain"
)

func TestResolve_Admin(t *testing.T) {
	r := NewResolver()

	perms := r.Resolve(domain.RoleAdmin)
	assert.True(t, Has(perms, PostBook))
	assert.True(t, Has(perms, DeleteBook))
	assert.True(t, Has(perms, ViewUser))
	assert.Len(t, perms, 14)
}

func TestResolve_User(t *testing.T) {
	r := NewResolver()

	perms := r.Resolve(domain.RoleUser)
	assert.True(t, Has(perms, ViewBook))
	assert.True(t, Has(perms, ViewAuthor))
	assert.True(t, Has(perms, ViewCategory))
	assert.False(t, Has(perms, PostBook))
	assert.False(t, Has(perms, DeleteBook))
}

func TestResolve_UnknownRole(t *testing.T) {
	r := NewResolver()

	perms := r.Resolve(domain.UserRole("superuser"))
	assert.Empty(t, perms)
	assert.False(t, Has(perms, ViewBook))
}

func TestResolve_ReturnsCopy(t *testing.T) {
	r := NewResolver()

	perms := r.Resolve(domain.RoleUser)
	perms[0] = PostBook

	again := r.Resolve(domain.RoleUser)
	assert.False(t, Has(again, PostBook))
}
