package announcement

type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	EventDate   string `json:"event_date" binding:"required,datetime=2006-01-02"`
}

type AnnouncementResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	CreatedAt   string `json:"created_at"`
}
