package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"waterpolo-backend/internal/domains/roster/model"
)

// ExportSeason renders one season's roster as an .xlsx workbook for the
// coaching staff. Staff entries leave the athletic columns blank.
func (s *rosterService) ExportSeason(ctx context.Context, seasonID uuid.UUID) (*excelize.File, error) {
	players, err := s.repo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster for export: %w", err)
	}

	return buildRosterExcelFile(players)
}

func buildRosterExcelFile(players []*model.Player) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Roster"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"Number",
		"Name",
		"Position",
		"Graduation Year",
		"Hometown",
		"Major",
		"Role",
	}

	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "G1", headerStyle)
	}

	for i, p := range players {
		rowNum := i + 2

		cell := func(col int) string {
			c, _ := excelize.CoordinatesToCellName(col, rowNum)
			return c
		}

		role := "Player"
		if p.IsStaff {
			role = "Staff"
		} else {
			f.SetCellValue(sheetName, cell(1), p.Number)
			f.SetCellValue(sheetName, cell(3), p.Position)
			f.SetCellValue(sheetName, cell(4), p.GraduationYear)
		}

		f.SetCellValue(sheetName, cell(2), p.Name)
		f.SetCellValue(sheetName, cell(5), p.Hometown)
		f.SetCellValue(sheetName, cell(6), p.Major)
		f.SetCellValue(sheetName, cell(7), role)
	}

	return f, nil
}
