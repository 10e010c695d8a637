// file: internals/features/attendance/attendance/service/classifier_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"absensiku_backend/internals/constants"
	"absensiku_backend/internals/features/attendance/attendance/model"
	geoService "absensiku_backend/internals/features/attendance/geolocation/service"
	staffModel "absensiku_backend/internals/features/users/staff/model"
	staffService "absensiku_backend/internals/features/users/staff/service"
	"absensiku_backend/internals/helpers/officetime"
)

var (
	// Check-in kedua di hari yang sama: bukan kegagalan, record tidak dibuat.
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// Device staff tidak cocok dengan yang pernah diikat.
	ErrWrongDevice = errors.New("device does not match registered device")

	// Device sudah diikat ke staff lain.
	ErrDeviceReuse = errors.New("device already registered to another staff")

	// Check-out tanpa check-in hari ini.
	ErrNotCheckedIn = errors.New("not checked in today")
)

// Classify menentukan status kehadiran untuk satu percobaan check-in.
// Urutan keputusan (yang pertama cocok menang):
//  1. permission aktif → Permission
//  2. tidak di kantor → Absent (lokasi menang atas jam)
//  3. jam lokal >= 17:00 → Absent (datang setelah jam tutup tetap Absent,
//     walau secara fisik di kantor — kebijakan, bukan bug)
//  4. lewat 09:00 → Late
//  5. <= 09:00 → Present
func Classify(at time.Time, loc *time.Location, officeMatched, hasPermission bool) string {
	if hasPermission {
		return constants.AttendanceStatusPermission
	}
	if !officeMatched {
		return constants.AttendanceStatusAbsent
	}

	lt := at.In(loc)
	switch {
	case lt.Hour() >= constants.OfficeCloseHour:
		return constants.AttendanceStatusAbsent
	case lt.Hour() > constants.LateCutoffHour,
		lt.Hour() == constants.LateCutoffHour && (lt.Minute() > 0 || lt.Second() > 0):
		return constants.AttendanceStatusLate
	default:
		return constants.AttendanceStatusPresent
	}
}

// CheckInResult adalah hasil check-in yang dikembalikan ke controller.
type CheckInResult struct {
	Status         string `json:"status"`
	OfficeName     string `json:"office_name"`
	LocationStatus string `json:"location_status"`
}

// CheckIn menjalankan satu percobaan check-in: expiry permission (jalur
// tulis), penjaga device, pencocokan lokasi, klasifikasi, lalu menyimpan
// tepat satu record attendance untuk hari ini. Duplikat di hari yang sama
// ditolak oleh unique index (staff_id, attendance_date), bukan
// query-then-insert, jadi dua request nyaris bersamaan pun hanya satu yang
// menghasilkan record.
func CheckIn(db *gorm.DB, staffID uuid.UUID, lat, lng float64, deviceID string, now time.Time, loc *time.Location) (*CheckInResult, error) {
	var staff staffModel.StaffModel
	if err := db.Where("staff_id = ?", staffID).First(&staff).Error; err != nil {
		return nil, err
	}

	// Permission yang sudah lewat dibersihkan di sini (jalur tulis) —
	// sweep harian menjamin pembersihan juga terjadi tanpa check-in.
	if err := staffService.ExpireIfStale(db, &staff, now); err != nil {
		return nil, err
	}

	if err := guardDevice(db, &staff, deviceID); err != nil {
		return nil, err
	}

	office, matched := geoService.MatchOffice(lat, lng)
	hasPermission := staffService.IsUnderPermission(&staff, now)
	status := Classify(now, loc, matched, hasPermission)

	officeName := "Unknown Location"
	locationStatus := constants.LocationNotInOffice
	if matched {
		officeName = office.Name
		locationStatus = constants.LocationInOffice
	}

	checkIn := now
	record := model.AttendanceModel{
		AttendanceStaffID:        staff.StaffID,
		AttendanceDate:           officetime.DayStart(now, loc),
		AttendanceCheckIn:        &checkIn,
		AttendanceLatitude:       &lat,
		AttendanceLongitude:      &lng,
		AttendanceOfficeName:     officeName,
		AttendanceLocationStatus: locationStatus,
		AttendanceStatus:         status,
		AttendanceDeviceID:       &deviceID,
	}

	// Insert dan kenaikan counter satu transaksi: kalau increment gagal,
	// record ikut batal — retry berikutnya tidak tersandung
	// ErrAlreadyCheckedIn dengan counter yang tidak pernah naik.
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_staff_id"},
				{Name: "attendance_date"},
			},
			DoNothing: true,
		}).Create(&record)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyCheckedIn
		}

		if countsTowardMonthlyAbsence(status) {
			return tx.Model(&staffModel.StaffModel{}).
				Where("staff_id = ?", staff.StaffID).
				Update("staff_monthly_absence", gorm.Expr("staff_monthly_absence + 1")).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CheckInResult{
		Status:         status,
		OfficeName:     officeName,
		LocationStatus: locationStatus,
	}, nil
}

// guardDevice: device diikat saat check-in pertama; setelah itu check-in
// dari device lain ditolak, dan device yang sudah milik staff lain juga
// ditolak. Penjaga anti titip-absen. Ikatan ditegakkan unique index di
// staff_device_id: dua first check-in balapan dengan device yang sama,
// yang kalah dapat unique violation dan diperlakukan sebagai reuse.
func guardDevice(db *gorm.DB, staff *staffModel.StaffModel, deviceID string) error {
	if staff.StaffDeviceID != nil {
		if *staff.StaffDeviceID != deviceID {
			return ErrWrongDevice
		}
		return nil
	}

	var count int64
	if err := db.Model(&staffModel.StaffModel{}).
		Where("staff_device_id = ? AND staff_id <> ?", deviceID, staff.StaffID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDeviceReuse
	}

	if err := db.Model(&staffModel.StaffModel{}).
		Where("staff_id = ?", staff.StaffID).
		Update("staff_device_id", deviceID).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDeviceReuse
		}
		return err
	}
	staff.StaffDeviceID = &deviceID
	return nil
}

// isUniqueViolation mengenali pelanggaran unique constraint Postgres
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// countsTowardMonthlyAbsence: hanya status Absent dari check-in live yang
// menaikkan staff_monthly_absence. Backfill sweep tidak lewat sini.
func countsTowardMonthlyAbsence(status string) bool {
	return status == constants.AttendanceStatusAbsent
}

// CheckOut mencatat jam pulang pada record hari ini. Tanpa check-in hari
// ini, tidak ada yang diubah (no-op yang dilaporkan, bukan error server).
func CheckOut(db *gorm.DB, staffID uuid.UUID, lat, lng float64, now time.Time, loc *time.Location) (*CheckInResult, error) {
	var record model.AttendanceModel
	err := db.
		Where("attendance_staff_id = ? AND attendance_date = ?", staffID, officetime.DayStart(now, loc)).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotCheckedIn
	}
	if err != nil {
		return nil, err
	}

	// Resolusi lokasi kedua bersifat opsional — dicatat untuk respons,
	// status harian tidak berubah karena check-out.
	office, matched := geoService.MatchOffice(lat, lng)
	officeName := "Unknown Location"
	locationStatus := constants.LocationNotInOffice
	if matched {
		officeName = office.Name
		locationStatus = constants.LocationInOffice
	}

	if err := db.Model(&model.AttendanceModel{}).
		Where("attendance_id = ?", record.AttendanceID).
		Update("attendance_check_out", now).Error; err != nil {
		return nil, err
	}

	return &CheckInResult{
		Status:         record.AttendanceStatus,
		OfficeName:     officeName,
		LocationStatus: locationStatus,
	}, nil
}
