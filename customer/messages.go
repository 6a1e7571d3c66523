package customer

// Fault messages reported by the customer service.
const (
	CustomerNotFound     = "Customer Not Found"
	CustomerAlreadyExist = "Customer Already Exist"
)
