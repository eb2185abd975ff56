package entity

// Notification is the visible part of a push message.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Data is the structured metadata attached to every reminder push.
type Data struct {
	Type     string `json:"type"`
	MealType string `json:"mealType"`
	DeepLink string `json:"deepLink"`
}

// DisplayHints tell the client worker how to render the notification.
type DisplayHints struct {
	Icon    string `json:"icon"`
	Badge   string `json:"badge"`
	Vibrate []int  `json:"vibrate"`
}

// Payload is the wire shape shared with the client-side worker.
type Payload struct {
	Token        string       `json:"token"`
	Notification Notification `json:"notification"`
	Data         Data         `json:"data"`
	DisplayHints DisplayHints `json:"displayHints"`
}

// DispatchRequest is one (recipient, payload) pair produced by a scan.
// Built per tick, never persisted.
type DispatchRequest struct {
	ID      string  `json:"id"`
	UserID  string  `json:"user_id"`
	Payload Payload `json:"payload"`
}
