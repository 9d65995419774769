package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyEquipmentDBType string = "EQUIPMENT_DB_TYPE"
	EnvKeyEquipmentDBPath string = "EQUIPMENT_DB_PATH"
	EnvKeyEquipmentDBDSN  string = "EQUIPMENT_DB_DSN"

	EnvKeyEquipmentHTTPHostPort string = "EQUIPMENT_HTTP_HOST_PORT"

	EnvKeyEquipmentDefaultRate  string = "EQUIPMENT_DEFAULT_RATE"
	EnvKeyEquipmentDefaultBurst string = "EQUIPMENT_DEFAULT_BURST"

	LoggerNameEquipmentCore string = "equipment_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameDB            string = "db"

	LoggerFieldCategory   string = "category"
	LoggerCategoryMachine string = "machine"
	LoggerCategoryFailure string = "failure"
	LoggerCategoryStats   string = "stats"
)
