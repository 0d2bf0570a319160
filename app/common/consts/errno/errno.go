package errno

const (
	StatusOK = 10000
)

const (
	TokenEmpty = 40000 + iota
	TokenInvalid
	TokenExpired
)

const (
	InternalError = 50000 + iota
	InvalidParam
	SessionNotFound
	CatalogEmpty
)
