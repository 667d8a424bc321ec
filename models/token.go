package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, JWT token'ın içindeki veriler (payload).
//
// JWT 3 parçadan oluşur: header.payload.signature
// Payload'da `sub` (kullanıcı adı) ve `exp` (epoch saniye) bulunur.
// Server her request'te imzayı ve expiry'yi doğrular — DB'ye gitmeden
// token sahibinin kim olduğunu bilir (stateless authentication).
//
// jwt.RegisteredClaims standart alanları (sub, exp, iat) zaten taşır;
// ekstra custom field'a ihtiyaç yok. Struct models paketinde tanımlı çünkü
// birden fazla katman (services, middleware, handlers) kullanır —
// circular dependency'yi önler.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// Username, token'ın kime ait olduğunu döner (sub claim'i).
func (c *TokenClaims) Username() string {
	return c.Subject
}
