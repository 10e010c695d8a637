package constants

// Status kehadiran harian (satu record per staff per hari)
const (
	AttendanceStatusPresent    = "Present"
	AttendanceStatusLate       = "Late"
	AttendanceStatusAbsent     = "Absent"
	AttendanceStatusPermission = "Permission"
)

// Status lokasi saat check-in
const (
	LocationInOffice    = "In Office"
	LocationNotInOffice = "Not in Office"
	LocationUnknown     = "Unknown"
)

// Status staff (mengikuti tipe permission yang aktif)
const (
	StaffStatusActive         = "Active"
	StaffStatusOnLeave        = "On Leave"
	StaffStatusOnOfficialDuty = "On Official Duty"
	StaffStatusSick           = "Sick"
	StaffStatusSuspended      = "Suspended"
)

// Tipe permission yang bisa diberikan admin
const (
	PermissionLeave      = "Leave"
	PermissionOfficial   = "Official"
	PermissionSickness   = "Sickness"
	PermissionEmergency  = "Emergency"
	PermissionSuspension = "Suspension"
)

var PermissionTypes = []string{
	PermissionLeave,
	PermissionOfficial,
	PermissionSickness,
	PermissionEmergency,
	PermissionSuspension,
}

// StatusForPermission memetakan tipe permission ke status staff.
// Emergency tidak mengubah status (tetap Active).
func StatusForPermission(permType string) string {
	switch permType {
	case PermissionLeave:
		return StaffStatusOnLeave
	case PermissionOfficial:
		return StaffStatusOnOfficialDuty
	case PermissionSickness:
		return StaffStatusSick
	case PermissionSuspension:
		return StaffStatusSuspended
	default:
		return StaffStatusActive
	}
}

// MonthTokenLayout dipakai untuk marker "sekali per bulan" (mis. "2025-07")
const MonthTokenLayout = "2006-01"

// Jam kantor (waktu lokal kantor)
const (
	OfficeCloseHour = 17 // check-in >= 17:00 dihitung Absent
	LateCutoffHour  = 9  // <= 09:00 masih Present
)

// Ambang eskalasi absensi bulanan
const (
	AbsenceWarningThreshold = 4
	AbsenceQueryThreshold   = 6
)

// Distribusi email HR untuk query & laporan harian
var HRDistributionList = []string{
	"hr@nbc.com",
	"ayoafe@gmail.com",
	"admin@nbc.com",
}
