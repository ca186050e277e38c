package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jferrer/voyagecast-go/internal/adapters/catalog"
	"github.com/jferrer/voyagecast-go/internal/adapters/persistence"
	catalogqueries "github.com/jferrer/voyagecast-go/internal/application/catalog/queries"
	"github.com/jferrer/voyagecast-go/internal/application/mediator"
	"github.com/jferrer/voyagecast-go/internal/application/simulation/commands"
	simqueries "github.com/jferrer/voyagecast-go/internal/application/simulation/queries"
	"github.com/jferrer/voyagecast-go/internal/domain/voyage"
	"github.com/jferrer/voyagecast-go/internal/infrastructure/config"
	"github.com/jferrer/voyagecast-go/internal/infrastructure/database"
)

// appContext bundles the wired application for one CLI invocation
type appContext struct {
	cfg      *config.Config
	db       *gorm.DB
	mediator mediator.Mediator
}

// newAppContext loads config, opens the database, migrates, seeds the
// catalog, and registers every handler on the mediator
func newAppContext(ctx context.Context) (*appContext, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	ships := persistence.NewGormShipRepository(db)
	routes := persistence.NewGormRouteRepository(db)
	runs := persistence.NewGormSimulationRunRepository(db)

	if err := catalog.NewSeeder(ships, routes).Seed(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	defaultCosts := voyage.CostParameters{
		BunkerPriceUSDPerTon: cfg.Pricing.BunkerPriceUSDPerTon,
		CO2PriceUSDPerTon:    cfg.Pricing.CO2PriceUSDPerTon,
	}

	m := mediator.NewMediator()
	registrations := []error{
		mediator.RegisterHandler[*commands.RunSimulationCommand](
			m, commands.NewRunSimulationHandler(ships, routes, runs, voyage.NewCalculator(), defaultCosts, nil)),
		mediator.RegisterHandler[*simqueries.GetSimulationRunQuery](
			m, simqueries.NewGetSimulationRunHandler(runs)),
		mediator.RegisterHandler[*simqueries.ListSimulationRunsQuery](
			m, simqueries.NewListSimulationRunsHandler(runs)),
		mediator.RegisterHandler[*catalogqueries.ListShipsQuery](
			m, catalogqueries.NewListShipsHandler(ships)),
		mediator.RegisterHandler[*catalogqueries.ListRoutesQuery](
			m, catalogqueries.NewListRoutesHandler(routes)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}

	return &appContext{cfg: cfg, db: db, mediator: m}, nil
}

// Close releases the database connection
func (a *appContext) Close() {
	_ = database.Close(a.db)
}

// formatUSD formats a dollar amount with thousands separators
func formatUSD(amount float64) string {
	return "$" + addThousandsSeparator(int64(amount+0.5))
}

// formatTons formats a fuel quantity in metric tons
func formatTons(tons float64) string {
	return fmt.Sprintf("%.1f t", tons)
}

// formatHours renders a duration in hours as days and hours
func formatHours(hours float64) string {
	days := int(hours) / 24
	rem := hours - float64(days*24)
	if days == 0 {
		return fmt.Sprintf("%.1fh", hours)
	}
	return fmt.Sprintf("%dd %.1fh", days, rem)
}

// addThousandsSeparator adds commas to a number (e.g., 1234567 -> "1,234,567")
func addThousandsSeparator(n int64) string {
	if n < 0 {
		return "-" + addThousandsSeparator(-n)
	}
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var result []byte
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
