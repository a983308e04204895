package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerListsResource(srv, svc)
	registerListTemplate(srv, svc)
	registerItemTemplate(srv, svc)
}

func registerListsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"pantry://lists",
		"Lists",
		mcp.WithResourceDescription("All shopping lists with item counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListLists()
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"lists": summaries,
			"count": len(summaries),
			"mode":  svc.App.Mode().String(),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerListTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"pantry://lists/{id}/{mode}",
		"List View",
		mcp.WithTemplateDescription("A list projected in home or shop mode."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("list id is required")
		}
		mode := templateArg(request.Params.Arguments["mode"])

		v, err := svc.ViewList(id, mode, false)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, v)
	})
}

func registerItemTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"pantry://items/{id}",
		"Item Details",
		mcp.WithTemplateDescription("Counts and placements of a single item on the current list."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("item id is required")
		}

		dto, err := svc.ItemByID(id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"item": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArg accepts both a plain string and the []string form some
// template matchers produce.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
