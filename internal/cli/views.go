package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/simaogato/portfolio-analytics-backend/internal/adapter/presenter"
	"github.com/simaogato/portfolio-analytics-backend/internal/usecase/dashboard"
)

// renderFunc computes one view and returns its JSON shape
type renderFunc func(ctx context.Context, svc *dashboard.DashboardService) (interface{}, error)

// viewCmd prints one dashboard view computed offline
type viewCmd struct {
	name     string
	synopsis string
	render   renderFunc
	out      io.Writer

	datasetPath string
}

func (c *viewCmd) Name() string     { return c.name }
func (c *viewCmd) Synopsis() string { return c.synopsis }
func (c *viewCmd) Usage() string {
	return fmt.Sprintf(`portfolioctl %s [-dataset <file>]

  Prints the %s view as JSON, computed from the dataset file or the
  built-in reference dataset when no file is given.
`, c.name, c.name)
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.datasetPath, "dataset", "", "Path to a portfolio dataset file (JSON or YAML)")
}

func (c *viewCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, err := openService(ctx, c.datasetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		return subcommands.ExitFailure
	}

	view, err := c.render(ctx, svc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing %s: %v\n", c.name, err)
		return subcommands.ExitFailure
	}

	if err := writeJSON(c.out, view); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func newHoldingsCmd(out io.Writer) *viewCmd {
	return &viewCmd{
		name:     "holdings",
		synopsis: "print every holding with its gain/loss",
		out:      out,
		render: func(ctx context.Context, svc *dashboard.DashboardService) (interface{}, error) {
			valued, err := svc.ListHoldings(ctx)
			if err != nil {
				return nil, err
			}
			return presenter.Holdings(valued), nil
		},
	}
}

func newAllocationCmd(out io.Writer) *viewCmd {
	return &viewCmd{
		name:     "allocation",
		synopsis: "print the sector and market cap allocation",
		out:      out,
		render: func(ctx context.Context, svc *dashboard.DashboardService) (interface{}, error) {
			result, err := svc.GetAllocation(ctx)
			if err != nil {
				return nil, err
			}
			return presenter.Allocation(result), nil
		},
	}
}

func newPerformanceCmd(out io.Writer) *viewCmd {
	return &viewCmd{
		name:     "performance",
		synopsis: "print the timeline and trailing returns",
		out:      out,
		render: func(ctx context.Context, svc *dashboard.DashboardService) (interface{}, error) {
			result, err := svc.GetPerformance(ctx)
			if err != nil {
				return nil, err
			}
			return presenter.Performance(result), nil
		},
	}
}

func newSummaryCmd(out io.Writer) *viewCmd {
	return &viewCmd{
		name:     "summary",
		synopsis: "print portfolio totals and insights",
		out:      out,
		render: func(ctx context.Context, svc *dashboard.DashboardService) (interface{}, error) {
			result, err := svc.GetSummary(ctx)
			if err != nil {
				return nil, err
			}
			return presenter.Summary(result), nil
		},
	}
}
