package session

import "github.com/bctDaGithub/orchid-storefront/models"

// Capability names something a screen can offer. All role gating goes through
// Can so no handler checks role strings on its own.
type Capability string

const (
	CapBrowseCatalog Capability = "catalog.browse"
	CapPlaceOrder    Capability = "order.place"
	CapTrackOrders   Capability = "order.track"
	CapManageUsers   Capability = "admin.users"
	CapManageOrchids Capability = "admin.orchids"
	CapManageOrders  Capability = "admin.orders"
)

var roleCaps = map[models.Role]map[Capability]bool{
	models.RoleCustomer: {
		CapBrowseCatalog: true,
		CapPlaceOrder:    true,
		CapTrackOrders:   true,
	},
	models.RoleAdmin: {
		CapBrowseCatalog: true,
		CapPlaceOrder:    true,
		CapManageUsers:   true,
		CapManageOrchids: true,
		CapManageOrders:  true,
	},
}

// Can reports whether the role may use the capability. Unknown roles get
// nothing.
func Can(role models.Role, cap Capability) bool {
	return roleCaps[role][cap]
}
