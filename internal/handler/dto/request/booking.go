package request

type ConfirmBookingRequest struct {
	PaymentToken string `json:"payment_token" binding:"required"`
}
