package holiday

type CreateHolidayRequest struct {
	Date  string `json:"date" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Kind  string `json:"kind" binding:"required,oneof=local closure turno"`
	Emoji string `json:"emoji"`
}

type HolidayResponse struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Emoji string `json:"emoji,omitempty"`
}
