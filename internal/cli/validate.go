package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/subcommands"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	grpcadapter "github.com/simaogato/portfolio-analytics-backend/internal/adapter/grpc"
)

// endpointCheck lists the fields a response must carry
type endpointCheck struct {
	path   string
	fields []string
	list   bool // response is a non-empty array; fields are checked on its first element
}

var endpointChecks = []endpointCheck{
	{
		path:   "/api/portfolio/holdings",
		fields: []string{"symbol", "name", "quantity", "avgPrice", "currentPrice", "sector", "marketCap", "value", "gainLoss", "gainLossPercent"},
		list:   true,
	},
	{path: "/api/portfolio/allocation", fields: []string{"bySector", "byMarketCap"}},
	{path: "/api/portfolio/performance", fields: []string{"timeline", "returns"}},
	{path: "/api/portfolio/summary", fields: summaryFields},
}

var summaryFields = []string{
	"totalValue", "totalInvested", "totalGainLoss", "totalGainLossPercent",
	"holdingsCount", "topPerformer", "worstPerformer", "diversificationScore", "riskLevel",
}

// validateCmd checks a running server answers every endpoint with the expected shape
type validateCmd struct {
	out io.Writer

	baseURL  string
	grpcAddr string
	timeout  time.Duration
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check a running server's endpoints" }
func (*validateCmd) Usage() string {
	return `portfolioctl validate [-url <base>] [-grpc <addr>] [-timeout <duration>]

  Calls / and the four portfolio endpoints of a running server and checks
  each response carries the required fields. With -grpc, also calls
  GetSummary on the gRPC service. Exits with status 1 on any failure.
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.baseURL, "url", "http://localhost:8000", "Base URL of the HTTP API")
	f.StringVar(&c.grpcAddr, "grpc", "", "Address of the gRPC service (skipped when empty)")
	f.DurationVar(&c.timeout, "timeout", 5*time.Second, "Per-request timeout")
}

func (c *validateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := &http.Client{Timeout: c.timeout}
	base := strings.TrimRight(c.baseURL, "/")

	if err := checkRoot(ctx, client, base); err != nil {
		fmt.Fprintf(c.out, "FAIL server health: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.out, "OK   server health")

	passed := true
	for _, check := range endpointChecks {
		if err := checkEndpoint(ctx, client, base, check); err != nil {
			fmt.Fprintf(c.out, "FAIL %s: %v\n", check.path, err)
			passed = false
			continue
		}
		fmt.Fprintf(c.out, "OK   %s\n", check.path)
	}

	if c.grpcAddr != "" {
		if err := c.checkGRPC(ctx); err != nil {
			fmt.Fprintf(c.out, "FAIL grpc %s: %v\n", grpcadapter.GetSummaryMethod, err)
			passed = false
		} else {
			fmt.Fprintf(c.out, "OK   grpc %s\n", grpcadapter.GetSummaryMethod)
		}
	}

	if !passed {
		fmt.Fprintln(c.out, "Some checks failed")
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.out, "All checks passed")
	return subcommands.ExitSuccess
}

func checkRoot(ctx context.Context, client *http.Client, base string) error {
	_, err := get(ctx, client, base+"/")
	return err
}

func checkEndpoint(ctx context.Context, client *http.Client, base string, check endpointCheck) error {
	body, err := get(ctx, client, base+check.path)
	if err != nil {
		return err
	}

	var obj map[string]json.RawMessage
	if check.list {
		var items []map[string]json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return fmt.Errorf("invalid JSON response: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("expected non-empty list")
		}
		obj = items[0]
	} else if err := json.Unmarshal(body, &obj); err != nil {
		return fmt.Errorf("invalid JSON response: %w", err)
	}

	for _, field := range check.fields {
		if _, ok := obj[field]; !ok {
			return fmt.Errorf("missing field %q", field)
		}
	}
	return nil
}

func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *validateCmd) checkGRPC(ctx context.Context) error {
	conn, err := grpc.NewClient(c.grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := grpcadapter.NewPortfolioClient(conn).GetSummary(ctx)
	if err != nil {
		return err
	}

	fields := resp.GetFields()
	for _, field := range summaryFields {
		if _, ok := fields[field]; !ok {
			return fmt.Errorf("missing field %q", field)
		}
	}
	return nil
}
