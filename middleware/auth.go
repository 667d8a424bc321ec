// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware Pattern: her request, handler'a ulaşmadan önce middleware'dan
// geçer. Go'da middleware bir fonksiyondur:
//
//	func(next http.Handler) http.Handler
//
// "next" zincirdeki bir sonraki handler'dır. Middleware kendi işini yapar
// (token doğrula), sonra next'i çağırır. Hata varsa next'i çağırmaz —
// request burada durur (short-circuit).
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/baran/kimlik/models"
	"github.com/baran/kimlik/pkg"
	"github.com/baran/kimlik/services"
)

// contextKey, context.Value çakışmalarını önleyen private key tipi.
// String key kullanmak başka paketlerle collision riski taşır.
type contextKey string

const claimsContextKey contextKey = "claims"

// AuthMiddleware, JWT bearer token doğrulama middleware'ı.
//
// Request başına state tutmaz — admit/reject kararı sadece o request'in
// token'ına ve şu anki zamana bağlıdır. Bu yüzden keyfi concurrency
// altında lock'suz güvenlidir.
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Require, JWT token zorunlu kılan middleware. Route tablosunda sadece
// protected route grubu bununla sarılır; register/login gibi public
// endpoint'ler hiç bu koddan geçmez.
//
// Akış:
//  1. "Authorization" header'ını oku
//  2. Case-sensitive "Bearer " prefix'ini kontrol et ve kaldır
//  3. Header yok / prefix yok / token boş → verifier HİÇ çağrılmadan 401
//  4. ValidateAccessToken ile doğrula
//  5. Geçerliyse claims'i context'e koy, next'i çağır
//  6. Geçersizse 401, next ÇAĞRILMAZ
//
// Tüm reddetme yolları AYNI generic yanıtı üretir — hangi kontrolün
// başarısız olduğu (header mi, imza mı, expiry mi) client'a sızdırılmaz.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			reject(w)
			return
		}

		// "Bearer" şeması literal ve case-sensitive — "bearer" veya "Token"
		// kabul edilmez. Tek bir açık kontrat, sessiz varyant yok.
		if !strings.HasPrefix(authHeader, "Bearer ") {
			reject(w)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			reject(w)
			return
		}

		claims, err := m.authService.ValidateAccessToken(tokenString)
		if err != nil {
			reject(w)
			return
		}

		// Doğrulanmış claims'i context'e koy — downstream handler'lar token'ı
		// tekrar parse etmek yerine ClaimsFromContext ile kimliğe erişir.
		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// reject, tek tip 401 yanıtı yazar.
func reject(w http.ResponseWriter) {
	pkg.ErrorWithMessage(w, http.StatusUnauthorized, "unauthorized")
}

// ClaimsFromContext, auth middleware'ın context'e koyduğu doğrulanmış
// claims'i döner. Middleware'dan geçmemiş bir request'te (false, nil).
func ClaimsFromContext(ctx context.Context) (*models.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*models.TokenClaims)
	return claims, ok
}
