package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// Zona waktu kantor — semua aturan jam (09:00 / 17:00) dihitung di sini.
	OfficeLocation *time.Location
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	tz := GetEnv("OFFICE_TZ", "Africa/Lagos")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("⚠️ OFFICE_TZ %q tidak valid, fallback ke UTC: %v", tz, err)
		loc = time.UTC
	}
	OfficeLocation = loc
	log.Printf("✅ Zona waktu kantor: %s", OfficeLocation)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
