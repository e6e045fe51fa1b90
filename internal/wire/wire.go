// Package wire provides dependency injection for the spoolworks application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/spoolworks/internal/adapters/cli"
	"github.com/example/spoolworks/internal/adapters/sqlite"
	"github.com/example/spoolworks/internal/app"
	"github.com/example/spoolworks/internal/config"
	"github.com/example/spoolworks/internal/db"
	"github.com/example/spoolworks/internal/ports/primary"
)

var (
	workOrderService primary.WorkOrderService
	plantName        string
	once             sync.Once
)

// WorkOrderService returns the singleton WorkOrderService instance.
func WorkOrderService() primary.WorkOrderService {
	once.Do(initServices)
	return workOrderService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	gateway := sqlite.NewGateway(database)
	workOrderService = app.NewWorkOrderService(gateway, log.New(os.Stderr, "spoolworks: ", log.LstdFlags))

	// Config is optional; without one, reports carry no plant name.
	if cwd, err := os.Getwd(); err == nil {
		if cfg, err := config.LoadConfig(cwd); err == nil {
			plantName = cfg.PlantName
		}
	}
}

// WorkOrderAdapter returns a new WorkOrderAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func WorkOrderAdapter() *cliadapter.WorkOrderAdapter {
	return WorkOrderAdapterWithOutput(os.Stdout)
}

// WorkOrderAdapterWithOutput returns a new WorkOrderAdapter writing to the
// given output. This variant allows testing or alternate destinations.
func WorkOrderAdapterWithOutput(out io.Writer) *cliadapter.WorkOrderAdapter {
	once.Do(initServices)
	return cliadapter.NewWorkOrderAdapter(workOrderService, out, plantName)
}
