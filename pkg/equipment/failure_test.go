package equipment

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"equipment-management-service/pkg/common"
	"equipment-management-service/pkg/models"
	_ "equipment-management-service/pkg/testing"
)

func seedMachine(t *testing.T, eq *Equipment) *models.Machine {
	t.Helper()
	machine, err := eq.Machines.AddMachine(&models.Machine{Name: uuid.NewString()[:20]})
	require.NoError(t, err)
	return machine
}

func newFailureInput(machineID uint) *models.Failure {
	return &models.Failure{
		Name:        "Jam",
		MachineID:   machineID,
		Priority:    models.PriorityHigh,
		StartTime:   time.Now().UTC().Add(-time.Hour),
		Description: "paper jam in the feeder",
	}
}

func TestAddFailure(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)

	failure, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)
	assert.NotZero(t, failure.ID)
	assert.False(t, failure.IsResolved)
	assert.Nil(t, failure.EndTime)
	require.NotNil(t, failure.Machine)
	assert.Equal(t, machine.Name, failure.Machine.Name)
}

func TestAddFailure_ActiveFailureRejected(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)

	_, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)

	var before int64
	require.NoError(t, eq.Db.Conn.Model(&models.Failure{}).Count(&before).Error)

	second := newFailureInput(machine.ID)
	second.Name = "Jam2"
	_, err = eq.Failures.AddFailure(second)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))

	// the ledger row count must be unchanged
	var after int64
	require.NoError(t, eq.Db.Conn.Model(&models.Failure{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestAddFailure_Validation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)

	var validationErr *ValidationError

	{
		// the referenced machine must exist
		input := newFailureInput(99999)
		_, err := eq.Failures.AddFailure(input)
		require.Error(t, err)
		assert.True(t, errors.As(err, &validationErr))
	}

	{
		// the Swagger placeholder is not a description
		input := newFailureInput(machine.ID)
		input.Description = "string"
		_, err := eq.Failures.AddFailure(input)
		require.Error(t, err)
		assert.True(t, errors.As(err, &validationErr))
	}

	{
		// a new failure must start unresolved
		input := newFailureInput(machine.ID)
		input.IsResolved = true
		_, err := eq.Failures.AddFailure(input)
		require.Error(t, err)
		assert.True(t, errors.As(err, &validationErr))
	}

	{
		input := newFailureInput(machine.ID)
		input.Priority = models.Priority(7)
		_, err := eq.Failures.AddFailure(input)
		require.Error(t, err)
		assert.True(t, errors.As(err, &validationErr))
	}

	{
		input := newFailureInput(machine.ID)
		input.StartTime = time.Time{}
		_, err := eq.Failures.AddFailure(input)
		require.Error(t, err)
		assert.True(t, errors.As(err, &validationErr))
	}

	{
		input := newFailureInput(machine.ID)
		input.Description = strings.Repeat("x", 3001)
		_, err := eq.Failures.AddFailure(input)
		require.Error(t, err)
		assert.True(t, errors.As(err, &validationErr))
	}
}

func TestAddFailure_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)

	failure, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "failure" &&
			lobj["logger"] == "equipment_core" &&
			lobj["msg"] == "Failure recorded" &&
			lobj["failure"].(map[string]any)["name"] == failure.Name {
			found = true
		}
	}
	assert.True(t, found, "log not found")
}

func TestUpdateFailureStatus_ResolveAndReopen(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)
	failure, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)

	resolved, err := eq.Failures.UpdateFailureStatus(failure.ID, true)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)
	require.NotNil(t, resolved.EndTime)
	assert.False(t, resolved.EndTime.Before(resolved.StartTime))

	saved, err := eq.Failures.GetFailure(failure.ID)
	require.NoError(t, err)
	assert.True(t, saved.IsResolved)
	require.NotNil(t, saved.EndTime)

	reopened, err := eq.Failures.UpdateFailureStatus(failure.ID, false)
	require.NoError(t, err)
	assert.False(t, reopened.IsResolved)
	assert.Nil(t, reopened.EndTime)

	saved, err = eq.Failures.GetFailure(failure.ID)
	require.NoError(t, err)
	assert.False(t, saved.IsResolved)
	assert.Nil(t, saved.EndTime)
}

func TestUpdateFailureStatus_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	_, err := eq.Failures.UpdateFailureStatus(99999, true)
	require.Error(t, err)

	var notFoundErr *NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestUpdateFailure_EndBeforeStartRejected(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)
	failure, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)

	endTime := failure.StartTime.Add(-time.Minute)
	payload := *failure
	payload.Machine = nil
	payload.EndTime = &endTime

	_, err = eq.Failures.UpdateFailure(&payload)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))

	// the stored record is unchanged
	saved, err := eq.Failures.GetFailure(failure.ID)
	require.NoError(t, err)
	assert.False(t, saved.IsResolved)
	assert.Nil(t, saved.EndTime)
}

func TestUpdateFailure_SuppliedEndTimeForcesResolve(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)
	failure, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)

	endTime := failure.StartTime.Add(30 * time.Minute)
	payload := *failure
	payload.Machine = nil
	payload.EndTime = &endTime
	// IsResolved deliberately left false: the end time implies the resolve

	updated, err := eq.Failures.UpdateFailure(&payload)
	require.NoError(t, err)
	assert.True(t, updated.IsResolved)
	require.NotNil(t, updated.EndTime)
	// the false->true transition re-derives the end time to now, which is
	// after the start
	assert.False(t, updated.EndTime.Before(updated.StartTime))
}

func TestUpdateFailure_ReopenClearsEndTime(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)
	failure, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)

	resolved, err := eq.Failures.UpdateFailureStatus(failure.ID, true)
	require.NoError(t, err)
	require.NotNil(t, resolved.EndTime)

	payload := *resolved
	payload.Machine = nil
	payload.IsResolved = false
	payload.EndTime = nil

	reopened, err := eq.Failures.UpdateFailure(&payload)
	require.NoError(t, err)
	assert.False(t, reopened.IsResolved)
	assert.Nil(t, reopened.EndTime)
}

func TestUpdateFailure_MachineChangeChecksActiveInvariant(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	first := seedMachine(t, eq)
	second := seedMachine(t, eq)

	failure, err := eq.Failures.AddFailure(newFailureInput(first.ID))
	require.NoError(t, err)

	blocking, err := eq.Failures.AddFailure(newFailureInput(second.ID))
	require.NoError(t, err)
	require.False(t, blocking.IsResolved)

	// moving the unresolved failure onto a machine that already has an
	// active failure is rejected
	payload := *failure
	payload.Machine = nil
	payload.MachineID = second.ID

	_, err = eq.Failures.UpdateFailure(&payload)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))

	// after resolving the blocker the move succeeds
	_, err = eq.Failures.UpdateFailureStatus(blocking.ID, true)
	require.NoError(t, err)

	moved, err := eq.Failures.UpdateFailure(&payload)
	require.NoError(t, err)
	assert.Equal(t, second.ID, moved.MachineID)
}

func TestUpdateFailure_UnknownMachineRejected(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)
	failure, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)

	payload := *failure
	payload.Machine = nil
	payload.MachineID = 99999

	_, err = eq.Failures.UpdateFailure(&payload)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestGetSortedFailures(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	// one machine per failure so every failure can stay unresolved
	expectedOrder := []struct {
		priority models.Priority
		start    time.Time
	}{
		{models.PriorityHigh, base},
		{models.PriorityHigh, base.Add(time.Hour)},
		{models.PriorityMedium, base.Add(-time.Hour)},
		{models.PriorityLow, base.Add(-2 * time.Hour)},
	}

	// insert in scrambled order
	for _, i := range []int{2, 0, 3, 1} {
		machine := seedMachine(t, eq)
		input := newFailureInput(machine.ID)
		input.Priority = expectedOrder[i].priority
		input.StartTime = expectedOrder[i].start
		_, err := eq.Failures.AddFailure(input)
		require.NoError(t, err)
	}

	failures, err := eq.Failures.GetSortedFailures(1, 10)
	require.NoError(t, err)
	require.Len(t, failures, 4)

	for i, failure := range failures {
		assert.Equal(t, expectedOrder[i].priority, failure.Priority, "position %d", i)
		assert.True(t, expectedOrder[i].start.Equal(failure.StartTime.UTC()), "position %d", i)
	}
}

func TestGetSortedFailures_Pagination(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := range 3 {
		machine := seedMachine(t, eq)
		input := newFailureInput(machine.ID)
		input.Priority = models.PriorityHigh
		input.StartTime = base.Add(time.Duration(i) * time.Hour)
		_, err := eq.Failures.AddFailure(input)
		require.NoError(t, err)
	}

	page1, err := eq.Failures.GetSortedFailures(1, 2)
	require.NoError(t, err)
	assert.Len(t, page1, 2)

	page2, err := eq.Failures.GetSortedFailures(2, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 1)

	page3, err := eq.Failures.GetSortedFailures(3, 2)
	require.NoError(t, err)
	assert.Empty(t, page3)

	_, err = eq.Failures.GetSortedFailures(0, 2)
	require.Error(t, err)
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestDeleteFailure(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)
	failure, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)

	require.NoError(t, eq.Failures.DeleteFailure(failure.ID))

	_, err = eq.Failures.GetFailure(failure.ID)
	var notFoundErr *NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))

	err = eq.Failures.DeleteFailure(failure.ID)
	require.Error(t, err)
	var persistenceErr *PersistenceError
	assert.True(t, errors.As(err, &persistenceErr))
}

func TestGetActiveFailure(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, eq, _, _, _ := GetMockEquipmentWithMemorySqlite(t, false, false, false)
	defer ctrl.Finish()

	machine := seedMachine(t, eq)

	active, err := eq.Failures.GetActiveFailure(machine.ID)
	require.NoError(t, err)
	assert.Nil(t, active)

	failure, err := eq.Failures.AddFailure(newFailureInput(machine.ID))
	require.NoError(t, err)

	active, err = eq.Failures.GetActiveFailure(machine.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, failure.ID, active.ID)

	_, err = eq.Failures.UpdateFailureStatus(failure.ID, true)
	require.NoError(t, err)

	active, err = eq.Failures.GetActiveFailure(machine.ID)
	require.NoError(t, err)
	assert.Nil(t, active)
}
