package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/simaogato/portfolio-analytics-backend/internal/adapter/repository/dataset"
	"github.com/simaogato/portfolio-analytics-backend/internal/adapter/repository/memory"
	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
	"github.com/simaogato/portfolio-analytics-backend/internal/usecase/dashboard"
	"github.com/simaogato/portfolio-analytics-backend/internal/usecase/seeder"
)

// Commands returns every portfolioctl subcommand, writing to out
func Commands(out io.Writer) []subcommands.Command {
	return []subcommands.Command{
		newHoldingsCmd(out),
		newAllocationCmd(out),
		newPerformanceCmd(out),
		newSummaryCmd(out),
		&validateCmd{out: out},
	}
}

// Register adds the portfolioctl subcommands to c, grouped by purpose
func Register(c *subcommands.Commander, out io.Writer) {
	for _, cmd := range Commands(out) {
		group := "views"
		if cmd.Name() == "validate" {
			group = "server"
		}
		c.Register(cmd, group)
	}
}

// openService loads the dataset offline and wraps it in a dashboard service.
// An empty path selects the built-in reference dataset.
func openService(ctx context.Context, path string) (*dashboard.DashboardService, error) {
	var source domain.DatasetSource
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("dataset file: %w", err)
		}
		source = dataset.NewFileSource(path)
	}

	data, err := seeder.NewSeeder(source).Seed(ctx)
	if err != nil {
		return nil, err
	}

	store, err := memory.NewStore(data)
	if err != nil {
		return nil, err
	}

	return dashboard.NewDashboardService(store, store), nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
