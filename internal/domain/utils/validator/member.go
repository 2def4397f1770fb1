package validator

func MemberRole(role string) bool {
	switch role {
	case "member", "vice_president", "manager":
		return true
	}
	return false
}
