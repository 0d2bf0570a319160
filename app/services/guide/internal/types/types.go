// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ChatRequest struct {
	SessionId int64  `json:"session_id,optional"`
	Query     string `json:"query"`
}

type ChatResponse struct {
	StatusCode int64            `json:"status_code"`
	StatusMsg  string           `json:"status_msg"`
	SessionId  int64            `json:"session_id"`
	State      string           `json:"state"`
	Answer     string           `json:"answer"`
	Items      []Recommendation `json:"items"`
}

type Recommendation struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Spec        string `json:"spec"`
	Url         string `json:"url"`
	Rating      string `json:"rating,omitempty"`
	ReviewCount string `json:"review_count,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Score       int64  `json:"score"`
}

type ResetRequest struct {
	SessionId int64 `json:"session_id"`
}

type ResetResponse struct {
	StatusCode int64  `json:"status_code"`
	StatusMsg  string `json:"status_msg"`
	SessionId  int64  `json:"session_id"`
}
