package biz

const (
	// WIDGETTOKEN is the header/cookie name carrying the signed widget token.
	WIDGETTOKEN = "widget_token"

	// TopN is the number of candidates returned per recommendation pass.
	TopN = 3

	// MaxSearchResults bounds the requirement web search.
	MaxSearchResults = 3
)
