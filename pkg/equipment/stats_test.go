package equipment

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equipment-management-service/pkg/common"
	"equipment-management-service/pkg/models"
	_ "equipment-management-service/pkg/testing"
)

func TestGetMachineDetails_AverageOneHour(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)

	failure, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)

	// pin an exactly one hour downtime window
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	require.NoError(t, eq.Db.Conn.Model(&models.Failure{}).Where("id = ?", failure.ID).Updates(map[string]any{
		"start_time":  start,
		"end_time":    end,
		"is_resolved": true,
	}).Error)

	details, err := eq.Stats.GetMachineDetails(machine.ID)
	require.NoError(t, err)

	assert.Equal(t, machine.Name, details.MachineName)
	assert.Len(t, details.Failures, 1)
	assert.Equal(t, models.DurationBreakdown{Days: 0, Hours: 1, Minutes: 0, Seconds: 0}, details.AverageDuration)
}

func TestGetMachineDetails_NoFailures(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)

	details, err := eq.Stats.GetMachineDetails(machine.ID)
	require.NoError(t, err)

	assert.Equal(t, machine.Name, details.MachineName)
	assert.Empty(t, details.Failures)
	assert.Equal(t, models.DurationBreakdown{}, details.AverageDuration)
}

func TestGetMachineDetails_UnresolvedCountsAsOngoing(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)

	input := newFailureInput(machine.ID)
	input.StartTime = time.Now().UTC().Add(-2 * time.Hour)
	_, err := eq.Failures.AddFailure(input)
	require.NoError(t, err)

	details, err := eq.Stats.GetMachineDetails(machine.ID)
	require.NoError(t, err)

	// an open failure counts from its start up to now
	assert.Equal(t, 0, details.AverageDuration.Days)
	assert.GreaterOrEqual(t, details.AverageDuration.Hours, 1)
}

func TestGetMachineDetails_UnknownMachine(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	_, err := eq.Stats.GetMachineDetails(99999)
	require.Error(t, err)

	var notFoundErr *NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestBreakdownSeconds(t *testing.T) {
	cases := []struct {
		seconds  float64
		expected models.DurationBreakdown
	}{
		{0, models.DurationBreakdown{}},
		{59.9, models.DurationBreakdown{Seconds: 59}},
		{3600, models.DurationBreakdown{Hours: 1}},
		{90061, models.DurationBreakdown{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}},
		{86399, models.DurationBreakdown{Hours: 23, Minutes: 59, Seconds: 59}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, breakdownSeconds(tc.seconds), "seconds %v", tc.seconds)
	}
}
