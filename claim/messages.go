package claim

// Fault messages reported by the claim service.
const (
	ClaimNotFound     = "Claim not found."
	NoClaimsFound     = "No claims found."
	ClaimAlreadyExist = "Claim Already Exist"
)
