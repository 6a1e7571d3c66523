package payment

// Fault messages reported by the payment service.
const (
	PaymentNotFound     = "Payment not found."
	NoPaymentsFound     = "No Payments found."
	PaymentAlreadyExist = "Payment Already Exist"
)
