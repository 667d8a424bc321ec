// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model, veritabanındaki bir tablonun Go karşılığıdır; aynı zamanda
// API'den gelen/giden verilerin şeklini belirler. `json:"username"` gibi
// tag'ler struct field'larının JSON'a nasıl serialize edileceğini söyler.
package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// User, bir kullanıcı hesabını temsil eder.
type User struct {
	ID           int64     `json:"id"`       // DB tarafından atanır (AUTOINCREMENT), immutable
	Username     string    `json:"username"` // unique, case-sensitive saklanır
	PasswordHash string    `json:"-"`        // json:"-" → API response'a ASLA dahil etme
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest, kayıt olurken client'tan gelen veri.
// PasswordHash yerine plaintext Password alırız — hash'leme service
// katmanında yapılır, plaintext hiçbir zaman persist edilmez.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate, RegisterRequest'in geçerli olup olmadığını kontrol eder.
// Kurallar:
//   - Username: 3-32 karakter, alfanumerik + alt çizgi
//   - Password: boş olamaz (uzunluk/karmaşıklık politikası yok —
//     her string hash'lenebilir)
func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	usernameLen := utf8.RuneCountInString(r.Username)
	if usernameLen < 3 || usernameLen > 32 {
		return fmt.Errorf("username must be between 3 and 32 characters")
	}

	for _, ch := range r.Username {
		if !isValidUsernameChar(ch) {
			return fmt.Errorf("username can only contain letters, numbers, and underscores")
		}
	}

	if r.Password == "" {
		return fmt.Errorf("password is required")
	}

	return nil
}

// LoginRequest, giriş yaparken client'tan gelen veri.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
// Format kuralı uygulanmaz — sadece boş alan reddedilir. Login'de
// "geçersiz format" ile "yanlış şifre" farklı mesajlar üretmemeli.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// isValidUsernameChar, username'de izin verilen karakterleri kontrol eder.
func isValidUsernameChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_'
}
