// Package crypto — şifre hash'leme fonksiyonları.
//
// bcrypt nedir?
// - Adaptive (yavaşlatılabilir) tek yönlü hash fonksiyonu.
// - Cost parametresi iş yükünü belirler — donanım hızlandıkça artırılabilir.
// - Her çağrıda taze rastgele salt üretir; salt ve cost, encoded çıktının
//   içine gömülür. Aynı şifre iki kez hash'lenirse iki FARKLI string çıkar.
//
// Kullanım:
//
//	hash, _ := crypto.HashPassword("hunter22")
//	ok := crypto.VerifyPassword("hunter22", hash) // true
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost, hash'leme iş faktörü.
// 12 = ~250ms civarı (modern CPU) — brute-force'u anlamlı derecede yavaşlatır.
const bcryptCost = 12

// HashPassword, plaintext şifreden salted bcrypt hash üretir.
// Her string input geçerlidir — hata sadece bcrypt'in kendi iç
// hatalarında döner (pratikte: 72 byte üstü input).
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword, plaintext şifreyi encoded hash ile karşılaştırır.
//
// Hash'in içine gömülü salt/cost ile yeniden hesaplar. Herhangi bir hata —
// yanlış şifre, bozuk/tanınmayan hash formatı — ayrım yapılmadan false'a
// çöker. Error yerine bool dönmesinin sebebi bu: "yanlış şifre" ile "bozuk
// hash" ayrımı caller'a (ve dolayısıyla client'a) sızmamalı.
func VerifyPassword(plaintext, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(plaintext)) == nil
}
