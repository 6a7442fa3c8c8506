package entity

// Roles canónicos (enumeración cerrada, sembrados por migración).
const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
	RoleCustomer = "CUSTOMER"
)

// Role es dato de referencia inmutable; los usuarios lo referencian vía user_roles.
type Role struct {
	ID   int64
	Name string
}

// ResolveRoleTokens mapea los tokens de rol de un registro a nombres canónicos.
// Tokens reconocidos (sensibles a mayúsculas): "admin", "manager", "employee".
// Cualquier otro token, o la ausencia total de tokens, resuelve a CUSTOMER.
// El resultado es un set: tokens duplicados colapsan y el orden es estable
// (orden de primera aparición).
func ResolveRoleTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{RoleCustomer}
	}
	seen := make(map[string]bool, len(tokens))
	var resolved []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			resolved = append(resolved, name)
		}
	}
	for _, t := range tokens {
		switch t {
		case "admin":
			add(RoleAdmin)
		case "manager":
			add(RoleManager)
		case "employee":
			add(RoleEmployee)
		default:
			add(RoleCustomer)
		}
	}
	return resolved
}
