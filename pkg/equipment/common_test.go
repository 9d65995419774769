package equipment

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"equipment-management-service/pkg/db"
	"equipment-management-service/pkg/equipment/mocks"
)

func GetMockEquipmentWithMemorySqlite(t *testing.T, useMockMachine, useMockFailure, useMockStats bool) (
	*gomock.Controller,
	*Equipment,
	*mocks.MockIMachine,
	*mocks.MockIFailure,
	*mocks.MockIStats,
) {
	ctrl := gomock.NewController(t)

	mockIMachine := mocks.NewMockIMachine(ctrl)
	mockIFailure := mocks.NewMockIFailure(ctrl)
	mockIStats := mocks.NewMockIStats(ctrl)

	dbInstance, err := db.Open(db.UseMemorySqliteDialector(), db.DefaultConfig())
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	equipmentInstance := &Equipment{Db: *dbInstance}

	machineService := equipmentInstance.GetIMachine()
	if useMockMachine {
		machineService = mockIMachine
	}

	failureService := equipmentInstance.GetIFailure()
	if useMockFailure {
		failureService = mockIFailure
	}

	statsService := equipmentInstance.GetIStats()
	if useMockStats {
		statsService = mockIStats
	}

	equipmentInstance.WithServices(ServiceOpts{
		Machines: machineService,
		Failures: failureService,
		Stats:    statsService,
	})

	return ctrl, equipmentInstance, mockIMachine, mockIFailure, mockIStats
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
