package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CheckUserKey gin.Context 中保存已验证 uid 的 key
const CheckUserKey = "uid"

var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier 校验身份令牌并返回 uid
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTVerifier 校验 HS256 签名的 JWT，uid 取 sub
type JWTVerifier struct {
	secret []byte
	issuer string
}

func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer}
}

func (v *JWTVerifier) Verify(tokenString string) (string, error) {
	if len(v.secret) == 0 {
		return "", fmt.Errorf("%w: verifier not configured", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	uid, err := token.Claims.GetSubject()
	if err != nil || uid == "" {
		return "", fmt.Errorf("%w: missing sub", ErrInvalidToken)
	}
	return uid, nil
}

// LoadUser 解析 Authorization: Bearer，校验通过则把 uid 放进上下文；不拦截
func LoadUser(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			uid, err := verifier.Verify(token)
			if err != nil {
				log.Printf("[auth] token rejected: %v", err)
			} else {
				c.Set(CheckUserKey, uid)
			}
		}
		c.Next()
	}
}

// AuthRequired 没有已验证身份时返回 401
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// CurrentUID 当前请求的已验证 uid，未登录为空
func CurrentUID(c *gin.Context) string {
	return c.GetString(CheckUserKey)
}
