package request

type CreateHoldRequest struct {
	SeatIDs []string `json:"seat_ids" binding:"required,min=1"`
}
