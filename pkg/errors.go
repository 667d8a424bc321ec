// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir. errors.New() ile sabit error
// değişkenleri (sentinel) tanımlarız; karşılaştırma string yerine
// errors.Is() ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
package pkg

import "errors"

// Domain-level error'lar.
// Service katmanı bunları döner (gerekirse fmt.Errorf("%w: ...") ile sararak),
// handler katmanı pkg.Error() üzerinden HTTP status code'larına map'ler.
var (
	ErrNotFound      = errors.New("not found")      // kayıt yok → 404
	ErrUnauthorized  = errors.New("unauthorized")   // token/credential geçersiz → 401
	ErrAlreadyExists = errors.New("already exists") // unique constraint → 409
	ErrBadRequest    = errors.New("bad request")    // geçersiz input → 400
	ErrInternal      = errors.New("internal error") // DB/pool/hash hatası → 500
)
