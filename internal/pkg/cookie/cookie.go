package cookie

import "github.com/gin-gonic/gin"

const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
