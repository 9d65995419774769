package equipment

import (
	"equipment-management-service/pkg/db"
	"equipment-management-service/pkg/models"
)

type IMachine interface {
	GetAllMachines() ([]models.Machine, error)
	GetMachine(id uint) (*models.Machine, error)
	AddMachine(input *models.Machine) (*models.Machine, error)
	UpdateMachine(input *models.Machine) (*models.Machine, error)
	DeleteMachine(id uint) error
}

type IFailure interface {
	GetAllFailures() ([]models.Failure, error)
	GetFailure(id uint) (*models.Failure, error)
	GetActiveFailure(machineID uint) (*models.Failure, error)
	GetFailuresByMachine(machineID uint) ([]models.Failure, error)
	GetSortedFailures(page, pageSize int) ([]models.Failure, error)
	AddFailure(input *models.Failure) (*models.Failure, error)
	UpdateFailure(input *models.Failure) (*models.Failure, error)
	UpdateFailureStatus(id uint, isResolved bool) (*models.Failure, error)
	DeleteFailure(id uint) error
}

type IStats interface {
	GetMachineDetails(machineID uint) (*models.MachineDetails, error)
}

// Equipment is the core of the service: the machine registry, the failure
// ledger with its lifecycle rules, and the statistics aggregator, all over
// one database handle.
type Equipment struct {
	Db       db.DB
	Machines IMachine
	Failures IFailure
	Stats    IStats
}

type ServiceOpts struct {
	Machines IMachine
	Failures IFailure
	Stats    IStats
}

func (e *Equipment) WithServices(opts ServiceOpts) *Equipment {
	if opts.Machines != nil {
		e.Machines = opts.Machines
	}
	if opts.Failures != nil {
		e.Failures = opts.Failures
	}
	if opts.Stats != nil {
		e.Stats = opts.Stats
	}
	return e
}
