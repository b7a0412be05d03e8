package notification

type SendNotificationRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Title    string `json:"title" binding:"required,max=100"`
	Message  string `json:"message" binding:"required,max=1000"`
}

type SendNotificationResponse struct {
	ID         string `json:"id"`
	Recipients int    `json:"recipients"`
}
