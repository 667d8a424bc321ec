// Package database embed dosyası — migration SQL dosyalarını binary'ye gömer.
//
// Go'nun embed paketi, derleme zamanında dosyaları binary'nin içine gömer.
// Deploy edilen binary'nin yanında migration dosyalarına ihtiyaç kalmaz.
package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations, gömülü migration dosyalarını kök dizinde sunan fs.FS döner.
// database.New'a doğrudan geçilebilir.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// embed derleme zamanında sabitlenir — buraya düşmek programlama hatasıdır
		panic(err)
	}
	return sub
}
