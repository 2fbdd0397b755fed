package domain

import "slices"

type Capability string

const (
	CapEditPosts     Capability = "edit_posts"
	CapPublishPosts  Capability = "publish_posts"
	CapUploadFiles   Capability = "upload_files"
	CapManageOptions Capability = "manage_options"
	CapEditProducts  Capability = "edit_products"
)

const RoleAdministrator = "administrator"

// Principal is a site account that owns records created through the bridge.
type Principal struct {
	ID           int64        `db:"id" json:"id"`
	Login        string       `db:"login" json:"login"`
	Role         string       `db:"role" json:"role"`
	Capabilities []Capability `db:"-" json:"capabilities"`
}

func (p *Principal) IsAdministrator() bool {
	return p.Role == RoleAdministrator
}

// Can reports whether the principal holds every listed capability.
func (p *Principal) Can(caps ...Capability) bool {
	if p == nil {
		return false
	}
	if p.IsAdministrator() {
		return true
	}
	for _, c := range caps {
		if !slices.Contains(p.Capabilities, c) {
			return false
		}
	}
	return true
}
