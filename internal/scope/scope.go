package scope

import (
	"gorm.io/gorm"

	"github.com/akshaygopinath16/Doddamagge/internal/models"
)

// Visibility is a query restriction derived from the caller's identity and
// role. It is re-derived on every request, never cached.
type Visibility struct {
	All    bool
	Column string
	Value  string
}

// Apply narrows a gorm query to the visible subset. A restriction whose value
// matches nothing (e.g. a payment referencing a renamed user) produces an
// empty result, not an error.
func (v Visibility) Apply(db *gorm.DB) *gorm.DB {
	if v.All {
		return db
	}
	return db.Where(v.Column+" = ?", v.Value)
}

// Allows reports whether a single column value passes the restriction.
func (v Visibility) Allows(value string) bool {
	return v.All || v.Value == value
}

// Payments restricts non-admin callers to payments whose soft user reference
// equals their username exactly. No normalization, no case folding.
func Payments(role, username string) Visibility {
	if role == models.RoleAdmin {
		return Visibility{All: true}
	}
	return Visibility{Column: "username", Value: username}
}

// Events restricts non-admin callers to approved events. Events carry no
// creator reference, so this is a status visibility rule rather than an
// ownership rule.
func Events(role string) Visibility {
	if role == models.RoleAdmin {
		return Visibility{All: true}
	}
	return Visibility{Column: "status", Value: models.EventApproved}
}
