package equipment

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"equipment-management-service/pkg/common"
	"equipment-management-service/pkg/models"
)

// placeholderSentinel is the literal Swagger UI leaves in string fields when
// the caller forgets to fill them in. Treated the same as an empty value.
const placeholderSentinel = "string"

const maxNameLength = 50

func validateMachineName(name string) error {
	if name == "" || name == placeholderSentinel {
		return newValidationError("equipment name is required")
	}
	if len(name) > maxNameLength {
		return newValidationError("equipment name cannot exceed %d characters", maxNameLength)
	}
	return nil
}

func (e *Equipment) getAllMachines() ([]models.Machine, error) {
	var machines []models.Machine
	if err := e.Db.Conn.Find(&machines).Error; err != nil {
		return nil, &PersistenceError{Op: "list machines", Err: err}
	}
	return machines, nil
}

func (e *Equipment) getMachine(id uint) (*models.Machine, error) {
	var machine models.Machine
	if err := e.Db.Conn.First(&machine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "machine", ID: id}
		}
		return nil, &PersistenceError{Op: "get machine", Err: err}
	}
	return &machine, nil
}

func (e *Equipment) addMachine(input *models.Machine) (*models.Machine, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEquipmentCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMachine),
	)

	if err := validateMachineName(input.Name); err != nil {
		return nil, err
	}

	machine := models.Machine{Name: input.Name}

	err := e.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var existing models.Machine
		err := tx.Where("name = ?", machine.Name).First(&existing).Error
		if err == nil {
			return &ConflictError{Message: "equipment with the same name already exists"}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return &PersistenceError{Op: "check machine name", Err: err}
		}
		if err := tx.Create(&machine).Error; err != nil {
			return &PersistenceError{Op: "add machine", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Machine registered", zap.Reflect("machine", machine))

	return &machine, nil
}

func (e *Equipment) updateMachine(input *models.Machine) (*models.Machine, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEquipmentCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMachine),
	)

	if err := validateMachineName(input.Name); err != nil {
		return nil, err
	}

	machine := models.Machine{ID: input.ID, Name: input.Name}

	err := e.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var existing models.Machine
		err := tx.Where("name = ? AND id <> ?", machine.Name, machine.ID).First(&existing).Error
		if err == nil {
			return &ConflictError{Message: "equipment with the same name already exists"}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return &PersistenceError{Op: "check machine name", Err: err}
		}

		res := tx.Model(&models.Machine{}).Where("id = ?", machine.ID).Update("name", machine.Name)
		if res.Error != nil {
			return &PersistenceError{Op: "update machine", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return &PersistenceError{Op: "update machine"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Machine updated", zap.Reflect("machine", machine))

	return &machine, nil
}

// deleteMachine removes the machine together with every failure recorded
// against it, in one transaction.
func (e *Equipment) deleteMachine(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameEquipmentCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMachine),
	)

	err := e.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("machine_id = ?", id).Delete(&models.Failure{}).Error; err != nil {
			return &PersistenceError{Op: "delete machine failures", Err: err}
		}
		res := tx.Delete(&models.Machine{}, id)
		if res.Error != nil {
			return &PersistenceError{Op: "delete machine", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return &PersistenceError{Op: "delete machine"}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Machine deleted", zap.Uint("machine_id", id))

	return nil
}

type IMachineImpl struct {
	equipment *Equipment
}

func (im *IMachineImpl) GetAllMachines() ([]models.Machine, error) {
	return im.equipment.getAllMachines()
}

func (im *IMachineImpl) GetMachine(id uint) (*models.Machine, error) {
	return im.equipment.getMachine(id)
}

func (im *IMachineImpl) AddMachine(input *models.Machine) (*models.Machine, error) {
	return im.equipment.addMachine(input)
}

func (im *IMachineImpl) UpdateMachine(input *models.Machine) (*models.Machine, error) {
	return im.equipment.updateMachine(input)
}

func (im *IMachineImpl) DeleteMachine(id uint) error {
	return im.equipment.deleteMachine(id)
}

func (e *Equipment) GetIMachine() IMachine {
	return &IMachineImpl{equipment: e}
}
