package models

// Vote is a single poll ballot. At most one vote is accepted per distinct
// client IP; the check lives in the service layer, not the schema.
type Vote struct {
	ID        int    `json:"id"`
	Option    string `json:"option"`
	IPAddress string `json:"ipAddress"`
}

// PollResult is one row of the aggregated poll standings.
type PollResult struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}
