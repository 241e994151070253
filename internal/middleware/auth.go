package middleware

import (
	"crypto/subtle"

	"gestor_unad_backend/internal/config"
	"gestor_unad_backend/internal/util"
	"gestor_unad_backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PlaceholderSecret es la credencial de ejemplo que traen los .env
// de muestra. Si el secret configurado sigue siendo esta cadena se
// asume que nunca se cambió y el API queda en modo abierto, igual
// que cuando no hay secret. El arranque lo advierte en el log porque
// deja el API sin protección.
const PlaceholderSecret = "cambia_esto_por_una_clave_secreta_muy_larga_123"

const secretHeader = "x-api-secret"

// OpenMode indica si el gate dejará pasar todo.
func OpenMode(secret string) bool {
	return secret == "" || secret == PlaceholderSecret
}

// APISecret compara el header x-api-secret contra el secret
// configurado. Gate binario, uniforme para todas las rutas /api.
func APISecret(cfg *config.Config) gin.HandlerFunc {
	secret := cfg.Server.APISecret
	open := OpenMode(secret)
	if open {
		logger.Log.Warn("API en modo abierto: configure API_SECRET con un valor propio")
	}

	return func(c *gin.Context) {
		if open {
			c.Next()
			return
		}
		provided := c.GetHeader(secretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
