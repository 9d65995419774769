package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"equipment-management-service/pkg/common"
	"equipment-management-service/pkg/db"
	"equipment-management-service/pkg/equipment"
	equipmentHttp "equipment-management-service/pkg/http"
)

const (
	defaultRate  = 50.0
	defaultBurst = 100
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with the process environment")
	}

	logger := common.GetLogger()

	var dialector = db.UseSqliteDialector(os.Getenv(common.EnvKeyEquipmentDBPath))
	switch dbType := os.Getenv(common.EnvKeyEquipmentDBType); dbType {
	case "", "file":
		// default sqlite file store
	case "memory":
		dialector = db.UseMemorySqliteDialector()
	case "postgres":
		dsn := os.Getenv(common.EnvKeyEquipmentDBDSN)
		if dsn == "" {
			log.Fatal("EQUIPMENT_DB_DSN must be set when EQUIPMENT_DB_TYPE is postgres")
		}
		dialector = db.UsePostgresDialector(dsn)
	default:
		log.Fatal("Unknown EQUIPMENT_DB_TYPE: " + dbType)
	}

	dbInstance, err := db.Open(dialector, db.DefaultConfig())
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}

	clientRate := defaultRate
	if v := strings.TrimSpace(os.Getenv(common.EnvKeyEquipmentDefaultRate)); v != "" {
		if clientRate, err = strconv.ParseFloat(v, 64); err != nil {
			log.Fatal("Invalid EQUIPMENT_DEFAULT_RATE, should be a float64 value")
		}
	}
	clientBurst := defaultBurst
	if v := strings.TrimSpace(os.Getenv(common.EnvKeyEquipmentDefaultBurst)); v != "" {
		if clientBurst, err = strconv.Atoi(v); err != nil {
			log.Fatal("Invalid EQUIPMENT_DEFAULT_BURST, should be an int value")
		}
	}

	equipmentCore := equipment.Equipment{
		Db: *dbInstance,
	}
	equipmentCore.WithServices(equipment.ServiceOpts{
		Machines: equipmentCore.GetIMachine(),
		Failures: equipmentCore.GetIFailure(),
		Stats:    equipmentCore.GetIStats(),
	})

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyEquipmentHTTPHostPort))
	if httpHostPort == "" {
		httpHostPort = ":8080"
	}

	rs := &equipmentHttp.RestfulServer{
		Server:           gin.Default(),
		Equipment:        &equipmentCore,
		RateLimiterStore: equipment.NewRateLimiterStore(rate.Limit(clientRate), clientBurst),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", clientRate),
		zap.Int("default_burst", clientBurst))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
