// Package mcptool exposes the calculator as a Model Context Protocol tool.
package mcptool

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"simplecalc/internal/calculator"
)

const ToolName = "calculate"

// NewServer builds an MCP server with the calculate tool registered.
func NewServer(name, version string) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithRecovery(),
	)

	s.AddTool(NewTool(), HandleCalculate)

	return s
}

// NewTool describes the calculate tool.
func NewTool() mcp.Tool {
	names := make([]string, 0, len(calculator.Operators))
	for _, op := range calculator.Operators {
		names = append(names, op.String())
	}

	return mcp.NewTool(ToolName,
		mcp.WithDescription("Apply one arithmetic operation to two numbers given as text"),
		mcp.WithString("operand_one",
			mcp.Required(),
			mcp.Description("First operand, e.g. \"4\" or \"-2.5\""),
		),
		mcp.WithString("operand_two",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
		mcp.WithString("operator",
			mcp.Required(),
			mcp.Description("Operation to apply"),
			mcp.Enum(names...),
		),
	)
}

// HandleCalculate runs one calculation. Calculator failures are returned as
// tool errors carrying the generic message and the failure kind; the Go
// error is reserved for protocol problems.
func HandleCalculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	opName, _ := args["operator"].(string)
	op, err := calculator.ParseOperator(opName)
	if err != nil {
		return toolError(calculator.KindOf(err)), nil
	}

	one, err := operandArg(args, "operand_one")
	if err != nil {
		return toolError(calculator.KindOf(err)), nil
	}
	two, err := operandArg(args, "operand_two")
	if err != nil {
		return toolError(calculator.KindOf(err)), nil
	}

	res := calculator.Run(ctx, "mcp", op, one, two)
	if !res.OK() {
		return toolError(res.Kind()), nil
	}

	return mcp.NewToolResultText(res.Text), nil
}

// operandArg returns the named operand text. An absent argument reads as
// empty text; a present non-string value (e.g. a JSON number) is a format error.
func operandArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &calculator.Error{Kind: calculator.KindFormat, Input: fmt.Sprint(raw)}
	}
	return s, nil
}

func toolError(kind calculator.Kind) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s (%s)", calculator.ComputationError, kind))
}
