package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jmbenitez/jurischat/internal/engine"
	"github.com/jmbenitez/jurischat/internal/models"
)

// ConsultaInput is the MCP tool input schema (matches the HTTP API field name).
type ConsultaInput struct {
	Query string `json:"query" jsonschema:"free-text query, e.g. 'casos de prescripción sala G 2023'"`
}

// NewConsultaHandler returns a tool handler backed by the given engine.
// Pass the returned function to mcp.AddTool.
func NewConsultaHandler(eng *engine.Engine) func(context.Context, *mcp.CallToolRequest, ConsultaInput) (*mcp.CallToolResult, models.QueryResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ConsultaInput) (*mcp.CallToolResult, models.QueryResult, error) {
		return Consulta(ctx, eng, req, input)
	}
}

// Consulta runs the query pipeline and returns the result.
func Consulta(
	ctx context.Context,
	eng *engine.Engine,
	req *mcp.CallToolRequest,
	input ConsultaInput,
) (*mcp.CallToolResult, models.QueryResult, error) {
	result, err := eng.Answer(ctx, input.Query)
	if err != nil {
		return nil, models.QueryResult{}, err
	}
	return nil, *result, nil
}
