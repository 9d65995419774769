package equipment

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"equipment-management-service/pkg/common"
	"equipment-management-service/pkg/models"
)

const (
	maxDescriptionLength = 3000
	defaultPageSize      = 10
)

func validateFailureFields(input *models.Failure) error {
	if input.Name == "" || input.Name == placeholderSentinel {
		return newValidationError("failure name is required")
	}
	if len(input.Name) > maxNameLength {
		return newValidationError("failure name cannot exceed %d characters", maxNameLength)
	}
	if input.Description == "" || input.Description == placeholderSentinel {
		return newValidationError("failure description is missing, you need to describe the failure of the equipment")
	}
	if len(input.Description) > maxDescriptionLength {
		return newValidationError("failure description cannot exceed %d characters", maxDescriptionLength)
	}
	if !input.Priority.Valid() {
		return newValidationError("failure priority must be low (1), medium (2) or high (3)")
	}
	if input.MachineID == 0 {
		return newValidationError("failure must reference a machine")
	}
	if input.StartTime.IsZero() {
		return newValidationError("failure start time is required")
	}
	return nil
}

func (e *Equipment) getAllFailures() ([]models.Failure, error) {
	var failures []models.Failure
	if err := e.Db.Conn.Preload("Machine").Find(&failures).Error; err != nil {
		return nil, &PersistenceError{Op: "list failures", Err: err}
	}
	return failures, nil
}

func (e *Equipment) getFailure(id uint) (*models.Failure, error) {
	var failure models.Failure
	if err := e.Db.Conn.Preload("Machine").First(&failure, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "failure", ID: id}
		}
		return nil, &PersistenceError{Op: "get failure", Err: err}
	}
	return &failure, nil
}

func (e *Equipment) getActiveFailure(machineID uint) (*models.Failure, error) {
	var failure models.Failure
	err := e.Db.Conn.Where("machine_id = ? AND NOT is_resolved", machineID).First(&failure).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get active failure", Err: err}
	}
	return &failure, nil
}

func (e *Equipment) getFailuresByMachine(machineID uint) ([]models.Failure, error) {
	var failures []models.Failure
	if err := e.Db.Conn.Where("machine_id = ?", machineID).Find(&failures).Error; err != nil {
		return nil, &PersistenceError{Op: "list machine failures", Err: err}
	}
	return failures, nil
}

// getSortedFailures returns one page of the priority queue: highest severity
// first, ties broken by earliest start time.
func (e *Equipment) getSortedFailures(page, pageSize int) ([]models.Failure, error) {
	if page < 1 {
		return nil, newValidationError("page must be a positive integer")
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	var failures []models.Failure
	err := e.Db.Conn.
		Preload("Machine").
		Order("priority DESC, start_time ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&failures).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list sorted failures", Err: err}
	}
	return failures, nil
}

// addFailure records a new failure. A failure always starts unresolved, and
// a machine can hold at most one unresolved failure at a time; the existence
// check and the insert run in one transaction, with the partial unique index
// as the backstop.
func (e *Equipment) addFailure(input *models.Failure) (*models.Failure, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEquipmentCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryFailure),
	)

	if err := validateFailureFields(input); err != nil {
		return nil, err
	}
	if input.IsResolved {
		return nil, newValidationError("a new failure must start unresolved")
	}

	failure := models.Failure{
		Name:        input.Name,
		MachineID:   input.MachineID,
		Priority:    input.Priority,
		StartTime:   input.StartTime,
		Description: input.Description,
		IsResolved:  false,
	}

	err := e.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var machine models.Machine
		if err := tx.First(&machine, failure.MachineID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newValidationError("machine with the specified machineId does not exist")
			}
			return &PersistenceError{Op: "check machine", Err: err}
		}

		var active models.Failure
		err := tx.Where("machine_id = ? AND NOT is_resolved", failure.MachineID).First(&active).Error
		if err == nil {
			return newValidationError(
				"there is an active failure on the same machine, you cannot report a new failure until you resolve the first failure")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return &PersistenceError{Op: "check active failure", Err: err}
		}

		if err := tx.Create(&failure).Error; err != nil {
			return &PersistenceError{Op: "add failure", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Failure recorded", zap.Reflect("failure", failure))

	return e.getFailure(failure.ID)
}

// updateFailure replaces the stored record with the payload (full replace,
// not a patch) and re-derives the resolution timing afterwards, so the
// transition implied by IsResolved always wins over a client-supplied
// EndTime.
func (e *Equipment) updateFailure(input *models.Failure) (*models.Failure, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEquipmentCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryFailure),
	)

	existing, err := e.getFailure(input.ID)
	if err != nil {
		return nil, err
	}

	if err := validateFailureFields(input); err != nil {
		return nil, err
	}
	if input.EndTime != nil && input.EndTime.Before(input.StartTime) {
		return nil, newValidationError("failure end time cannot be earlier than its start time")
	}

	// A supplied end time means the failure is being closed out.
	if input.EndTime != nil {
		input.IsResolved = true
	}

	if input.MachineID != existing.MachineID {
		machine, err := e.getMachine(input.MachineID)
		if err != nil {
			var notFound *NotFoundError
			if errors.As(err, &notFound) {
				return nil, newValidationError("machine with the specified machineId does not exist")
			}
			return nil, err
		}
		if !input.IsResolved {
			active, err := e.getActiveFailure(machine.ID)
			if err != nil {
				return nil, err
			}
			if active != nil && active.ID != input.ID {
				return nil, newValidationError(
					"there is an active failure on the target machine, you cannot move an unresolved failure onto it")
			}
		}
	}

	wasResolved := existing.IsResolved
	previousEndTime := existing.EndTime

	existing.Name = input.Name
	existing.MachineID = input.MachineID
	existing.Priority = input.Priority
	existing.StartTime = input.StartTime
	existing.EndTime = input.EndTime
	existing.Description = input.Description
	existing.IsResolved = input.IsResolved
	existing.Machine = nil

	switch {
	case !wasResolved && existing.IsResolved:
		now := time.Now().UTC()
		existing.EndTime = &now
	case wasResolved && !existing.IsResolved:
		existing.EndTime = nil
	case wasResolved && existing.IsResolved && existing.EndTime == nil:
		// no transition and the payload omitted the end time, keep the
		// stored one so a resolved failure never loses it
		existing.EndTime = previousEndTime
	}

	res := e.Db.Conn.Omit(clause.Associations).Save(existing)
	if res.Error != nil {
		return nil, &PersistenceError{Op: "update failure", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, &PersistenceError{Op: "update failure"}
	}

	logger.Info("Failure updated", zap.Reflect("failure", existing))

	return e.getFailure(existing.ID)
}

// updateFailureStatus flips the resolution flag and derives the end time
// from the transition: resolving stamps now, reopening clears it.
func (e *Equipment) updateFailureStatus(id uint, isResolved bool) (*models.Failure, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEquipmentCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryFailure),
	)

	existing, err := e.getFailure(id)
	if err != nil {
		return nil, err
	}

	switch {
	case !existing.IsResolved && isResolved:
		now := time.Now().UTC()
		existing.EndTime = &now
	case existing.IsResolved && !isResolved:
		existing.EndTime = nil
	}
	existing.IsResolved = isResolved

	res := e.Db.Conn.Model(&models.Failure{}).Where("id = ?", id).Updates(map[string]any{
		"is_resolved": existing.IsResolved,
		"end_time":    existing.EndTime,
	})
	if res.Error != nil {
		return nil, &PersistenceError{Op: "update failure status", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, &PersistenceError{Op: "update failure status"}
	}

	logger.Info("Failure status updated",
		zap.Uint("failure_id", id), zap.Bool("is_resolved", isResolved))

	return existing, nil
}

func (e *Equipment) deleteFailure(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameEquipmentCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryFailure),
	)

	res := e.Db.Conn.Delete(&models.Failure{}, id)
	if res.Error != nil {
		return &PersistenceError{Op: "delete failure", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &PersistenceError{Op: "delete failure"}
	}

	logger.Info("Failure deleted", zap.Uint("failure_id", id))

	return nil
}

type IFailureImpl struct {
	equipment *Equipment
}

func (ifl *IFailureImpl) GetAllFailures() ([]models.Failure, error) {
	return ifl.equipment.getAllFailures()
}

func (ifl *IFailureImpl) GetFailure(id uint) (*models.Failure, error) {
	return ifl.equipment.getFailure(id)
}

func (ifl *IFailureImpl) GetActiveFailure(machineID uint) (*models.Failure, error) {
	return ifl.equipment.getActiveFailure(machineID)
}

func (ifl *IFailureImpl) GetFailuresByMachine(machineID uint) ([]models.Failure, error) {
	return ifl.equipment.getFailuresByMachine(machineID)
}

func (ifl *IFailureImpl) GetSortedFailures(page, pageSize int) ([]models.Failure, error) {
	return ifl.equipment.getSortedFailures(page, pageSize)
}

func (ifl *IFailureImpl) AddFailure(input *models.Failure) (*models.Failure, error) {
	return ifl.equipment.addFailure(input)
}

func (ifl *IFailureImpl) UpdateFailure(input *models.Failure) (*models.Failure, error) {
	return ifl.equipment.updateFailure(input)
}

func (ifl *IFailureImpl) UpdateFailureStatus(id uint, isResolved bool) (*models.Failure, error) {
	return ifl.equipment.updateFailureStatus(id, isResolved)
}

func (ifl *IFailureImpl) DeleteFailure(id uint) error {
	return ifl.equipment.deleteFailure(id)
}

func (e *Equipment) GetIFailure() IFailure {
	return &IFailureImpl{equipment: e}
}
