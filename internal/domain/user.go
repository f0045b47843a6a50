package domain

type User struct {
	ID       int64  `db:"user_id" json:"user_id"`
	Username string `db:"username" json:"username"`
	ChatID   int64  `db:"chat_id" json:"chat_id"`
}

type Ticker struct {
	ID      int64    `db:"ticker_id" json:"ticker_id"`
	Name    string   `db:"name" json:"name"`
	Company string   `db:"company" json:"company"`
	Regions []Region `json:"regions"`
}

// SubscriberMatch is one row of the fan-out join: a user subscribed to a
// ticker that belongs to one of the regions of a submitted news item.
// The service aggregates these into one Notification per user.
type SubscriberMatch struct {
	UserID     int64  `db:"user_id"`
	Username   string `db:"username"`
	ChatID     int64  `db:"chat_id"`
	TickerName string `db:"ticker_name"`
	RegionName string `db:"region_name"`
}
