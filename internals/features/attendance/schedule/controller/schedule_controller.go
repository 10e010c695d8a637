// file: internals/features/attendance/schedule/controller/schedule_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/schedule/dto"
	"absensiku_backend/internals/features/attendance/schedule/model"
	"absensiku_backend/internals/features/attendance/schedule/service"
	helper "absensiku_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

var validate = validator.New()

/* ===================== BULK CREATE (ADMIN) ===================== */
// POST /api/admin/schedules — jadwal baru menggantikan yang overlap
func (ctrl *ScheduleController) BulkCreate(c *fiber.Ctx) error {
	var req dto.BulkCreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	loc := configs.OfficeLocation
	created := make([]dto.ScheduleResponse, 0, len(req.Schedules))
	for _, entry := range req.Schedules {
		sch, err := entry.ToModel(loc)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Tanggal jadwal tidak valid")
		}
		if err := service.ReplaceStaffSchedule(ctrl.DB, sch); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
		}
		created = append(created, dto.NewScheduleResponse(*sch))
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jadwal tersimpan", created)
}

/* ===================== GET PER STAFF ===================== */
// GET /api/admin/schedules/:staff_id
func (ctrl *ScheduleController) GetForStaff(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("staff_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "staff_id tidak valid")
	}

	var schedules []model.ScheduleModel
	if err := ctrl.DB.
		Where("schedule_staff_id = ?", staffID).
		Order("schedule_created_at DESC").
		Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	out := make([]dto.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, dto.NewScheduleResponse(s))
	}
	return helper.Success(c, "OK", out)
}

/* ===================== WEEKLY OFFICE SCHEDULE ===================== */
// PUT /api/admin/weekly-schedule — atomic swap versi aktif
func (ctrl *ScheduleController) SetWeeklySchedule(c *fiber.Ctx) error {
	var req dto.SetWeeklyScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var weekStart *time.Time
	if req.WeekStart != nil {
		parsed, err := time.ParseInLocation("2006-01-02", *req.WeekStart, configs.OfficeLocation)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "week_start tidak valid")
		}
		weekStart = &parsed
	}

	ws, err := service.ReplaceWeeklySchedule(ctrl.DB, req.Days, weekStart)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengganti weekly schedule")
	}
	return helper.Success(c, "Weekly office schedule diperbarui", ws)
}

// GET /api/admin/weekly-schedule
func (ctrl *ScheduleController) GetWeeklySchedule(c *fiber.Ctx) error {
	ws, err := service.ActiveWeeklySchedule(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil weekly schedule")
	}
	if ws == nil {
		return helper.Error(c, fiber.StatusNotFound, "Belum ada weekly schedule aktif")
	}
	return helper.Success(c, "OK", ws)
}
