// Package services, business logic katmanını barındırır.
//
// Service Layer Pattern: handler (HTTP) ile repository (DB) arasında oturan
// katmandır. Tüm iş kuralları burada yaşar: şifre hash'leme, JWT üretme ve
// doğrulama, credential kontrolü.
//
// Service ASLA http.Request/Response bilmez — sadece domain modelleri alır/verir.
// Service ASLA doğrudan SQL çalıştırmaz — repository interface'i kullanır.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baran/kimlik/models"
	"github.com/baran/kimlik/pkg"
	"github.com/baran/kimlik/pkg/crypto"
	"github.com/baran/kimlik/repository"
	"github.com/golang-jwt/jwt/v5"
)

// accessTokenTTL, token geçerlilik süresi.
// Tasarım parametresi — runtime'da değiştirilemez. exp = iat + TTL.
const accessTokenTTL = 60 * time.Minute

// AuthService interface'i — dışarıya açık API.
// Handler ve middleware bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	// Login, credential doğruysa imzalı access token döner.
	// Kullanıcı yok ile şifre yanlış AYNI hatayı üretir — username enumeration koruması.
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	// ValidateAccessToken, token imzasını ve expiry'yi doğrular.
	// Her başarısızlık (bozuk yapı, yanlış imza, süresi dolmuş) tek tip
	// pkg.ErrUnauthorized'a çöker — sebep caller'a ayrıştırılmaz.
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

// authService, AuthService interface'inin implementasyonu.
type authService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	dummyHash string
}

// NewAuthService, constructor.
// jwtSecret, startup'ta config'ten bir kez yüklenir ve buraya inject edilir —
// hiçbir code path request başına environment okumaz.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string) AuthService {
	// Login timing eşitlemesi için sabit bir dummy hash.
	// HashPassword 72 byte altı input'ta hata üretmez — error yok sayılabilir.
	dummyHash, _ := crypto.HashPassword("kimlik-timing-pad")

	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		dummyHash: dummyHash,
	}
}

// Register, yeni kullanıcı kaydı oluşturur.
// Plaintext şifre sadece bu çağrı süresince bellekte yaşar —
// DB'ye yalnızca bcrypt hash yazılır.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrInternal, err.Error())
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	// Username unique constraint'i DB'de — çakışma ErrAlreadyExists olarak döner
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login, kullanıcı girişi yapar.
//
// Güvenlik değişmezleri:
//   - "kullanıcı yok" ve "şifre yanlış" byte'ı byte'ına aynı yanıtı üretir
//   - kullanıcı bulunamasa bile bir bcrypt karşılaştırması yapılır (dummy hash),
//     böylece iki başarısızlık yolu arasında ölçülebilir süre farkı kalmaz
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			crypto.VerifyPassword(req.Password, s.dummyHash)
			return "", fmt.Errorf("%w: invalid username or password", pkg.ErrUnauthorized)
		}
		return "", err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return "", fmt.Errorf("%w: invalid username or password", pkg.ErrUnauthorized)
	}

	return s.issueToken(user.Username)
}

// ValidateAccessToken, JWT access token'ı doğrular ve claims'i döner.
func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		// Algorithm confusion koruması: sadece HMAC ailesi kabul edilir.
		// alg=none veya RS256 gönderen token burada reddedilir.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	return claims, nil
}

// ─── Private Helpers ───

// issueToken, subject için HS256 imzalı token üretir.
// exp saniye çözünürlüğündedir; jwt/v5 leeway olmadan exp <= now'u
// expired sayar (exclusive bound).
func (s *authService) issueToken(username string) (string, error) {
	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}
