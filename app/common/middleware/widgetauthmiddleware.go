package middleware

import (
	"net/http"

	"TechGuideAI/app/common/consts/biz"
	"TechGuideAI/app/common/consts/errno"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

// WidgetAuthMiddleware validates the signed token issued to embedded chat
// widgets. The token is a plain HS256 JWT carried in a cookie or header.
type WidgetAuthMiddleware struct {
	secret string
}

type widgetClaims struct {
	Origin string `json:"origin"`
	jwt.RegisteredClaims
}

func NewWidgetAuthMiddleware(secret string) *WidgetAuthMiddleware {
	return &WidgetAuthMiddleware{secret: secret}
}

func (m *WidgetAuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(biz.WIDGETTOKEN); err == nil {
			token = cookie.Value
		} else if headerToken := r.Header.Get(biz.WIDGETTOKEN); headerToken != "" {
			token = headerToken
		}

		if token == "" {
			httpx.Error(w, errors.New(errno.TokenEmpty, "widget token is null"))
			return
		}

		claims := &widgetClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(m.secret), nil
		})
		if err != nil {
			code := errno.TokenInvalid
			if errors2, ok := err.(*jwt.ValidationError); ok && errors2.Errors&jwt.ValidationErrorExpired != 0 {
				code = errno.TokenExpired
			}
			httpx.Error(w, errors.New(code, "widget token rejected"))
			return
		}
		if parsed == nil || !parsed.Valid {
			httpx.Error(w, errors.New(errno.TokenInvalid, "widget token rejected"))
			return
		}

		next(w, r)
	}
}
