package mq

// RecommendationEvent defines the payload sent to Kafka whenever a scoring
// pass produced a final product list for a session.
type RecommendationEvent struct {
	SessionId int64    `json:"session_id"`
	Category  string   `json:"category"`
	Usage     string   `json:"usage"`
	Software  string   `json:"software"`
	Budget    int64    `json:"budget"`
	Products  []string `json:"products"`
	At        int64    `json:"at"`
}
