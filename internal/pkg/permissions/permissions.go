package permissions

import "bookstore/internal/domain"

// Key is one atomic capability gating a single gateway action.
type Key string

const (
	PostBook       Key = "PostBook"
	UpdateBook     Key = "UpdateBook"
	DeleteBook     Key = "DeleteBook"
	ViewBook       Key = "ViewBook"
	PostAuthor     Key = "PostAuthor"
	UpdateAuthor   Key = "UpdateAuthor"
	DeleteAuthor   Key = "DeleteAuthor"
	ViewAuthor     Key = "ViewAuthor"
	PostCategory   Key = "PostCategory"
	UpdateCategory Key = "UpdateCategory"
	DeleteCategory Key = "DeleteCategory"
	ViewCategory   Key = "ViewCategory"
	ViewUser       Key = "ViewUser"
	DeleteUser     Key = "DeleteUser"
)

// Resolver maps a role to its fixed permission set. The table is built once
// and never mutated afterwards; handlers receive the resolver by injection.
type Resolver struct {
	table map[domain.UserRole][]Key
}

func NewResolver() *Resolver {
	return &Resolver{
		table: map[domain.UserRole][]Key{
			domain.RoleAdmin: {
				PostBook, DeleteBook, ViewBook,
				ViewAuthor, UpdateBook, DeleteAuthor, UpdateAuthor, PostAuthor,
				ViewCategory, UpdateCategory, DeleteCategory, PostCategory,
				ViewUser, DeleteUser,
			},
			domain.RoleUser: {
				ViewBook, ViewAuthor, ViewCategory,
			},
		},
	}
}

// Resolve returns the permission set for a role. An unknown role yields an
// empty set: the caller stays authenticated but is authorized for nothing.
func (r *Resolver) Resolve(role domain.UserRole) []Key {
	perms, ok := r.table[role]
	if !ok {
		return nil
	}
	out := make([]Key, len(perms))
	copy(out, perms)
	return out
}

// Has reports whether the resolved set contains the key.
func Has(set []Key, key Key) bool {
	for _, p := range set {
		if p == key {
			return true
		}
	}
	return false
}
