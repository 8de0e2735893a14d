package request

// StoreMessageRequest is the JSON body for archiving one chat exchange.
type StoreMessageRequest struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SchedulerRequest represents the JSON body for scheduler control.
type SchedulerRequest struct {
	// Action controls the stats refresher. Allowed values:
	// - "start": start refreshing on the configured interval
	// - "stop":  stop refreshing
	Action string `json:"action"`
}

// ErasureNoticeRequest is the payload posted to the compliance webhook
// after a user's messages have been deleted.
type ErasureNoticeRequest struct {
	UserID  string `json:"user_id"`
	Deleted int64  `json:"deleted"`
}
