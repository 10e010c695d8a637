// file: internals/mailer/mailer.go
package mailer

import (
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"absensiku_backend/internals/configs"
)

// SendEmail mengirim email HTML via SMTP (STARTTLS, port 587 default).
// Kegagalan kirim dikembalikan sebagai error supaya pemanggil bisa memutuskan
// sendiri: request path umumnya fire-and-forget (log saja), cron eskalasi
// menunda stamp bulanan bila gagal.
func SendEmail(to []string, subject string, html string) error {
	host := configs.GetEnv("SMTP_HOST")
	user := configs.GetEnv("SMTP_USER")
	pass := configs.GetEnv("SMTP_PASS")
	port := 587
	if p := configs.GetEnv("SMTP_PORT"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			port = parsed
		}
	}
	if host == "" || user == "" {
		return fmt.Errorf("mailer: SMTP_HOST/SMTP_USER belum diset")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("NBC Auditors Attendance Portal <%s>", user))
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(host, port, user, pass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mailer: gagal kirim ke %v: %w", to, err)
	}
	return nil
}

// SendAsync versi fire-and-forget: error hanya dicatat, tidak pernah
// menggagalkan transaksi pemanggil.
func SendAsync(to []string, subject string, html string) {
	go func() {
		if err := SendEmail(to, subject, html); err != nil {
			log.Printf("[MAILER] ❌ %v", err)
		} else {
			log.Printf("[MAILER] ✅ Email terkirim ke %v: %s", to, subject)
		}
	}()
}
