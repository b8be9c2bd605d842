package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterpolo-backend/internal/domains/roster/model"
)

func TestExportSeason(t *testing.T) {
	repo := newFakeRosterRepo()
	svc := newTestService(repo, newFakeHeadshotStorage(), &fakeEnqueuer{})
	ctx := context.Background()
	seasonID := uuid.New()

	player, err := svc.Create(ctx, validCreateRequest(seasonID), nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.CreatePlayerRequest{
		Name:         "Coach Daniels",
		IsStaff:      true,
		RosterYearID: seasonID,
	}, nil)
	require.NoError(t, err)

	f, err := svc.ExportSeason(ctx, seasonID)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Roster", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Number", header)

	rows, err := f.GetRows("Roster")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two entries")

	var playerRow, staffRow []string
	for _, row := range rows[1:] {
		if len(row) >= 2 && row[1] == player.Name {
			playerRow = row
		}
		if len(row) >= 2 && row[1] == "Coach Daniels" {
			staffRow = row
		}
	}

	require.NotNil(t, playerRow)
	assert.Equal(t, "7", playerRow[0])
	assert.Equal(t, "Driver", playerRow[2])

	require.NotNil(t, staffRow)
	assert.Empty(t, staffRow[0], "staff rows leave the number blank")
	assert.Equal(t, "Staff", staffRow[len(staffRow)-1])
}
