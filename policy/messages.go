package policy

// Fault messages reported by the policy service.
const (
	PolicyNotFound     = "Policy not found."
	NoPoliciesFound    = "No policies found."
	PolicyAlreadyExist = "Policy Already Exist"
)
