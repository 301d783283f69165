package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/uniplan/timetable-api/internal/dto"
	"github.com/uniplan/timetable-api/internal/models"
	appErrors "github.com/uniplan/timetable-api/pkg/errors"
	"github.com/uniplan/timetable-api/pkg/export"
)

type csvRenderer interface {
	Render(data export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Table, title string) ([]byte, error)
}

type exportScheduleReader interface {
	GroupSchedule(ctx context.Context, groupID string, query dto.ScheduleQuery) ([]models.ScheduledPairDetail, error)
}

// ExportService renders a group's timetable as a downloadable file.
type ExportService struct {
	schedule exportScheduleReader
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
}

// ExportPayload is a rendered file ready to stream to the client.
type ExportPayload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// NewExportService constructs an ExportService.
func NewExportService(schedule exportScheduleReader, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{schedule: schedule, csv: csv, pdf: pdf, logger: logger}
}

// GroupTimetable renders the timetable of one group for one half-year.
// Format defaults to CSV.
func (s *ExportService) GroupTimetable(ctx context.Context, groupID string, query dto.ExportQuery) (*ExportPayload, error) {
	details, err := s.schedule.GroupSchedule(ctx, groupID, dto.ScheduleQuery{HalfYear: query.HalfYear, WeekType: query.WeekType})
	if err != nil {
		return nil, err
	}

	table := timetableTable(details)
	title := fmt.Sprintf("Timetable %s", query.HalfYear)

	format := query.Format
	if format == "" {
		format = "csv"
	}
	switch format {
	case "csv":
		data, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportPayload{
			Data:        data,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("timetable-%s-%s.csv", groupID, query.HalfYear),
		}, nil
	case "pdf":
		data, err := s.pdf.Render(table, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportPayload{
			Data:        data,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("timetable-%s-%s.pdf", groupID, query.HalfYear),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func timetableTable(details []models.ScheduledPairDetail) export.Table {
	headers := []string{"Week", "Day", "Time", "Discipline", "Type", "Rooms", "Teachers", "Online"}
	rows := make([]map[string]string, 0, len(details))
	for i := range details {
		detail := &details[i]
		rows = append(rows, map[string]string{
			"Week":       weekLabel(detail),
			"Day":        string(detail.DayOfWeek),
			"Time":       detail.TimeSlotTitle,
			"Discipline": detail.Discipline,
			"Type":       string(detail.SessionType),
			"Rooms":      joinRooms(detail.Rooms),
			"Teachers":   joinTeachers(detail.Teachers),
			"Online":     onlineLabel(detail.IsOnline),
		})
	}
	return export.Table{Headers: headers, Rows: rows}
}

func weekLabel(detail *models.ScheduledPairDetail) string {
	switch {
	case detail.WeekType != nil:
		return string(*detail.WeekType)
	case detail.NumberWeek != nil:
		return fmt.Sprintf("WEEK %d", *detail.NumberWeek)
	default:
		return ""
	}
}

func joinRooms(rooms []models.RoomRef) string {
	titles := make([]string, 0, len(rooms))
	for _, room := range rooms {
		titles = append(titles, room.Title)
	}
	return strings.Join(titles, ", ")
}

func joinTeachers(teachers []models.TeacherRef) string {
	names := make([]string, 0, len(teachers))
	for _, teacher := range teachers {
		names = append(names, teacher.FullName)
	}
	return strings.Join(names, ", ")
}

func onlineLabel(online bool) string {
	if online {
		return "yes"
	}
	return ""
}
