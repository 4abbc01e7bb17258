package service

import (
	"bytes"
	"fmt"
	"rideflow/internal/domains/booking/model"
	"rideflow/shared/constant"
	"rideflow/shared/timezone"

	"github.com/xuri/excelize/v2"
)

const (
	exportSheet      = "Bookings"
	exportColWidth   = 18
	exportFirstRow   = 2
	exportHeaderFill = "#DDEBF7"
)

var exportHeaders = []string{
	"Booking ID", "Created At", "Scheduled Time", "Status", "Vehicle", "Pickup", "Drop",
	"Distance (km)", "Duration (min)", "Total Fare", "Discount", "Final Amount",
	"Payment Method", "Payment Status", "Driver", "Cancellation Reason",
}

func exportRow(booking model.Booking) []any {
	return []any{
		booking.ID,
		timezone.Format(booking.CreatedAt, constant.DateFormat),
		timezone.Format(booking.ScheduledTime, constant.DateFormat),
		booking.Status.String(),
		booking.VehicleType,
		booking.PickupAddress,
		booking.DropAddress,
		booking.DistanceKm,
		booking.EstimatedDuration,
		booking.TotalFare,
		booking.Discount,
		booking.FinalAmount,
		booking.PaymentMethod,
		booking.PaymentStatus,
		deref(booking.DriverName),
		deref(booking.CancellationReason),
	}
}

func deref(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}

// buildWorkbook renders bookings as a single sheet XLSX document.
func buildWorkbook(bookings []model.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	f.SetActiveSheet(index)

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{exportHeaderFill}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(exportHeaders))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve last column: %w", err)
	}

	if err := f.SetCellStyle(exportSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	if err := f.SetColWidth(exportSheet, "A", lastCol, exportColWidth); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, booking := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, exportFirstRow+i)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cell: %w", err)
		}

		row := exportRow(booking)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write booking %s: %w", booking.ID, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
