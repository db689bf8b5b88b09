package cancel_pending_payment

// Request - запрос на отмену незавершённой платёжной заявки
type Request struct {
	UserID    int64
	OrderCode string
}
