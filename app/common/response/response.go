// Package response holds the plain status envelope returned by endpoints that
// carry no payload of their own.
package response

type Response struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
}

func NewResponse(statusCode int, statusMsg string) Response {
	return Response{
		StatusCode: statusCode,
		StatusMsg:  statusMsg,
	}
}
