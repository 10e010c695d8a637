// file: internals/features/attendance/schedule/service/schedule_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/schedule/model"
	"absensiku_backend/internals/helpers/officetime"
)

/* =========================================================
 * PURE RESOLUTION — bisa diuji tanpa database
 * ========================================================= */

// IsOfficeDay mengecek apakah nama hari `date` (zona kantor) ada di daftar
// hari kebijakan mingguan.
func IsOfficeDay(days []string, date time.Time, loc *time.Location) bool {
	name := officetime.WeekdayName(date, loc)
	for _, d := range days {
		if strings.EqualFold(strings.TrimSpace(d), name) {
			return true
		}
	}
	return false
}

// ContainsDate mengecek apakah `date` (dinormalkan ke hari kalender lokal)
// ada di assigned_dates ("2006-01-02").
func ContainsDate(assigned []string, date time.Time, loc *time.Location) bool {
	key := officetime.DateKey(date, loc)
	for _, d := range assigned {
		if strings.TrimSpace(d) == key {
			return true
		}
	}
	return false
}

/* =========================================================
 * WEEKLY OFFICE SCHEDULE (kebijakan global, versioned)
 * ========================================================= */

// ActiveWeeklySchedule mengembalikan kebijakan mingguan aktif terbaru,
// atau nil bila belum pernah diset.
func ActiveWeeklySchedule(db *gorm.DB) (*model.WeeklyOfficeScheduleModel, error) {
	var ws model.WeeklyOfficeScheduleModel
	err := db.
		Where("weekly_office_schedule_is_active = ?", true).
		Order("weekly_office_schedule_created_at DESC").
		First(&ws).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

// ReplaceWeeklySchedule mengganti kebijakan mingguan secara atomik:
// versi lama dinonaktifkan dan versi baru disisipkan dalam satu transaksi,
// jadi tidak ada jendela "kosong" yang terlihat pembaca.
func ReplaceWeeklySchedule(db *gorm.DB, days []string, weekStart *time.Time) (*model.WeeklyOfficeScheduleModel, error) {
	ws := &model.WeeklyOfficeScheduleModel{
		WeeklyOfficeScheduleDays:      datatypes.NewJSONSlice(days),
		WeeklyOfficeScheduleWeekStart: weekStart,
		WeeklyOfficeScheduleIsActive:  true,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.WeeklyOfficeScheduleModel{}).
			Where("weekly_office_schedule_is_active = ?", true).
			Update("weekly_office_schedule_is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(ws).Error
	})
	if err != nil {
		return nil, err
	}
	return ws, nil
}

/* =========================================================
 * PER-STAFF SCHEDULE
 * ========================================================= */

// ScheduleFor mengambil jadwal per-staff yang mencakup `date`
// (terbaru dulu). nil bila tidak ada.
func ScheduleFor(db *gorm.DB, staffID uuid.UUID, date time.Time, loc *time.Location) (*model.ScheduleModel, error) {
	day := officetime.DayStart(date, loc)
	var sch model.ScheduleModel
	err := db.
		Where("schedule_staff_id = ?", staffID).
		Where("schedule_start_date <= ? AND schedule_end_date >= ?", day, day).
		Order("schedule_created_at DESC").
		First(&sch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sch, nil
}

// ReplaceStaffSchedule membuat jadwal baru untuk staff dan menghapus jadwal
// lama yang rentangnya overlap (replace, bukan merge) dalam satu transaksi.
func ReplaceStaffSchedule(db *gorm.DB, sch *model.ScheduleModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("schedule_staff_id = ?", sch.ScheduleStaffID).
			Where("schedule_start_date <= ? AND schedule_end_date >= ?",
				sch.ScheduleEndDate, sch.ScheduleStartDate).
			Delete(&model.ScheduleModel{}).Error; err != nil {
			return err
		}
		return tx.Create(sch).Error
	})
}

/* =========================================================
 * RESOLVER
 * ========================================================= */

// IsScheduledToday memutuskan apakah staff diharapkan hadir pada `date`.
// Prioritas: kebijakan mingguan global (bila ada, berlaku untuk semua staff
// dan mengabaikan jadwal individual) → assigned_dates jadwal per-staff →
// false bila dua-duanya tidak ada.
func IsScheduledToday(db *gorm.DB, staffID uuid.UUID, date time.Time, loc *time.Location) (bool, error) {
	ws, err := ActiveWeeklySchedule(db)
	if err != nil {
		return false, err
	}
	if ws != nil {
		return IsOfficeDay(ws.WeeklyOfficeScheduleDays, date, loc), nil
	}

	sch, err := ScheduleFor(db, staffID, date, loc)
	if err != nil {
		return false, err
	}
	if sch == nil {
		return false, nil
	}
	return ContainsDate(sch.ScheduleAssignedDates, date, loc), nil
}

// RequiredDaysPerWeek menghitung ekspektasi hari kantor seminggu untuk
// compliance check: jumlah hari kebijakan global bila ada, kalau tidak
// kuota days_per_week jadwal staff, kalau tidak 0.
func RequiredDaysPerWeek(db *gorm.DB, staffID uuid.UUID, ref time.Time, loc *time.Location) (int, error) {
	ws, err := ActiveWeeklySchedule(db)
	if err != nil {
		return 0, err
	}
	if ws != nil {
		return len(ws.WeeklyOfficeScheduleDays), nil
	}

	sch, err := ScheduleFor(db, staffID, ref, loc)
	if err != nil {
		return 0, err
	}
	if sch == nil || sch.ScheduleDaysPerWeek == nil {
		return 0, nil
	}
	return *sch.ScheduleDaysPerWeek, nil
}
