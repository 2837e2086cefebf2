package mcpserver

import (
	"context"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/xmazu/envload/loader"
	"github.com/xmazu/envload/source"
	"github.com/xmazu/envload/internal/workspace"
)

type fileArgs struct {
	Workdir string `json:"workdir" jsonschema:"directory inside the project (default: current); the project root is found from here"`
	File    string `json:"file" jsonschema:"env file name relative to the project root (default: the configured file or .env)"`
}

func NewServer(version string) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "envload",
		Version: version,
	}, nil)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "check_env",
		Description: "Validate the project's .env file. Returns the path, the key names that would be loaded and one diagnostic per skipped line (missing key, invalid key, missing value). Never returns values.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, args fileArgs) (*mcpsdk.CallToolResult, any, error) {
		report, err := inspect(args)
		if err != nil {
			return failure(err), nil, nil
		}
		return reportResult(report), nil, nil
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list_keys",
		Description: "List the names of the variables the project's .env file would set. Returns keys and path only; never returns values.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, args fileArgs) (*mcpsdk.CallToolResult, any, error) {
		report, err := inspect(args)
		if err != nil {
			return failure(err), nil, nil
		}
		return reportResult(map[string]any{"path": report.Path, "keys": report.Keys}), nil, nil
	})

	return server
}

func Run(ctx context.Context, version string) error {
	return NewServer(version).Run(ctx, &mcpsdk.StdioTransport{})
}

func inspect(args fileArgs) (loader.Report, error) {
	workdir := args.Workdir
	if workdir == "" {
		workdir = "."
	}
	root, err := workspace.FindRoot(workdir)
	if err != nil {
		return loader.Report{}, err
	}
	name := args.File
	if name == "" {
		cfg, err := workspace.ReadConfig(root)
		if err != nil {
			return loader.Report{}, err
		}
		name = cfg.EnvFile()
	}

	dir := source.NewDir(root)
	report, err := loader.Inspect(dir, name)
	if errors.Is(err, source.ErrNotFound) {
		return loader.Report{}, fmt.Errorf("no %s file found in %s", name, root)
	}
	if err != nil {
		return loader.Report{}, err
	}
	report.Path = dir.Path(name)
	return report, nil
}
