// file: internals/features/users/staff/service/permission_service.go
package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/staff/model"
)

// IsUnderPermission melaporkan apakah staff sedang dalam permission aktif:
// ada permission dan startDate <= now <= endDate. Murni baca — permission
// yang sudah lewat dianggap tidak aktif walau belum dibersihkan.
func IsUnderPermission(s *model.StaffModel, now time.Time) bool {
	p := s.CurrentPermission()
	if p == nil {
		return false
	}
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// PermissionExpired melaporkan apakah permission staff sudah lewat endDate.
func PermissionExpired(s *model.StaffModel, now time.Time) bool {
	p := s.CurrentPermission()
	return p != nil && now.After(p.EndDate)
}

// ExpireIfStale membersihkan permission yang sudah kedaluwarsa: pindah ke
// riwayat, status kembali Active, lalu disimpan. Dipanggil dari jalur tulis
// (awal check-in) dan oleh sweep harian — bukan dari jalur baca murni,
// supaya read tidak diam-diam memutasi state.
func ExpireIfStale(db *gorm.DB, s *model.StaffModel, now time.Time) error {
	if !PermissionExpired(s, now) {
		return nil
	}
	s.ClearPermission()
	return db.Model(&model.StaffModel{}).
		Where("staff_id = ?", s.StaffID).
		Updates(map[string]interface{}{
			"staff_permission_type":     nil,
			"staff_permission_reason":   nil,
			"staff_permission_start":    nil,
			"staff_permission_end":      nil,
			"staff_permissions_history": s.StaffPermissionsHistory,
			"staff_status":              s.StaffStatus,
		}).Error
}

// ExpireStaleForRoster menyapu seluruh roster dan membersihkan permission
// yang endDate-nya sudah lewat. Kegagalan satu staff dicatat dan tidak
// menghentikan staff berikutnya. Mengembalikan jumlah yang dibersihkan.
func ExpireStaleForRoster(db *gorm.DB, now time.Time) int {
	var stale []model.StaffModel
	if err := db.
		Where("staff_permission_end IS NOT NULL AND staff_permission_end < ?", now).
		Find(&stale).Error; err != nil {
		log.Printf("[PERMISSION] ❌ Gagal ambil permission kedaluwarsa: %v", err)
		return 0
	}

	cleared := 0
	for i := range stale {
		if err := ExpireIfStale(db, &stale[i], now); err != nil {
			log.Printf("[PERMISSION] ❌ Gagal bersihkan permission staff %s: %v", stale[i].StaffID, err)
			continue
		}
		cleared++
	}
	return cleared
}
