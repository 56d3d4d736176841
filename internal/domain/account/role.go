package account

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCustomer    Role = "customer"
	RoleRetailer    Role = "retailer"
	RoleDeliveryBoy Role = "deliveryBoy"
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleCustomer, RoleRetailer, RoleDeliveryBoy:
		return r, true
	}
	return "", false
}

func (r Role) In(allowed []Role) bool {
	for _, a := range allowed {
		if a == r {
			return true
		}
	}
	return false
}

// SelfRegistrable reports whether users can sign up with this role.
func (r Role) SelfRegistrable() bool {
	return r == RoleCustomer || r == RoleRetailer || r == RoleDeliveryBoy
}
