package equipment

import (
	"time"

	"go.uber.org/zap"

	"equipment-management-service/pkg/common"
	"equipment-management-service/pkg/models"
)

// getMachineDetails aggregates the machine's failure history into the
// statistics payload. An unresolved failure counts as ongoing downtime up
// to now.
func (e *Equipment) getMachineDetails(machineID uint) (*models.MachineDetails, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEquipmentCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStats),
	)

	machine, err := e.getMachine(machineID)
	if err != nil {
		return nil, err
	}

	failures, err := e.getFailuresByMachine(machineID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	durations := common.Mapper(failures, func(f models.Failure) time.Duration {
		if f.IsResolved && f.EndTime != nil {
			return f.EndTime.Sub(f.StartTime)
		}
		return now.Sub(f.StartTime)
	})
	total := common.Reducer(durations, func(acc, d time.Duration) time.Duration {
		return acc + d
	}, time.Duration(0))

	var averageSeconds float64
	if len(failures) > 0 {
		averageSeconds = total.Seconds() / float64(len(failures))
	}

	details := &models.MachineDetails{
		MachineName:     machine.Name,
		Failures:        failures,
		AverageDuration: breakdownSeconds(averageSeconds),
	}

	logger.Info("Machine details computed",
		zap.Uint("machine_id", machineID),
		zap.Int("failure_count", len(failures)),
		zap.Reflect("average_duration", details.AverageDuration))

	return details, nil
}

// breakdownSeconds converts an average in seconds to whole days, hours,
// minutes and seconds. Fractional seconds are truncated.
func breakdownSeconds(seconds float64) models.DurationBreakdown {
	total := int64(seconds)
	return models.DurationBreakdown{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}

type IStatsImpl struct {
	equipment *Equipment
}

func (is *IStatsImpl) GetMachineDetails(machineID uint) (*models.MachineDetails, error) {
	return is.equipment.getMachineDetails(machineID)
}

func (e *Equipment) GetIStats() IStats {
	return &IStatsImpl{equipment: e}
}
