package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListListsTool(srv, svc)
	registerShowListTool(srv, svc)
	registerAddListTool(srv, svc)
	registerEditListTool(srv, svc)
	registerSwitchListTool(srv, svc)
	registerDeleteListTool(srv, svc)
	registerAddSectionTool(srv, svc)
	registerRenameSectionTool(srv, svc)
	registerDeleteSectionTool(srv, svc)
	registerMoveSectionTool(srv, svc)
	registerAddItemTool(srv, svc)
	registerRenameItemTool(srv, svc)
	registerDeleteItemTool(srv, svc)
	registerAdjustCountTool(srv, svc)
	registerToggleCompletedTool(srv, svc)
	registerMoveItemTool(srv, svc)
	registerSetModeTool(srv, svc)
}

var modeEnum = mcp.Enum("home", "shop")

func registerListListsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_lists",
		mcp.WithDescription("List every shopping list with item counts."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lists, err := svc.ListLists()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"lists": lists,
			"count": len(lists),
		})
	})
}

func registerShowListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"show_list",
		mcp.WithDescription("Show a list's sections and items in rank order for a mode."),
		mcp.WithString("list_id",
			mcp.Description("List to show. Defaults to the current list."),
		),
		mcp.WithString("mode",
			mcp.Description("View mode. Defaults to the active mode."),
			modeEnum,
		),
		mcp.WithBoolean("include_stocked",
			mcp.Description("In shop mode, also include items that need no buying."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ListID         string `json:"list_id"`
			Mode           string `json:"mode"`
			IncludeStocked bool   `json:"include_stocked"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		v, err := svc.ViewList(args.ListID, args.Mode, args.IncludeStocked)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(v)
	})
}

func registerAddListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_list",
		mcp.WithDescription("Create a new list and make it current."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the list."),
		),
		mcp.WithString("theme",
			mcp.Description("Accent colour such as #4a90e2."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		l, err := svc.App.AddList(name, request.GetString("theme", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(ListSummary{ID: l.ID, Name: l.Name, Theme: l.Theme, Current: true})
	})
}

func registerEditListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"edit_list",
		mcp.WithDescription("Rename a list or change its theme. Empty values are left unchanged."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("List identifier."),
		),
		mcp.WithString("name",
			mcp.Description("New name."),
		),
		mcp.WithString("theme",
			mcp.Description("New accent colour."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.App.RenameList(id, request.GetString("name", ""), request.GetString("theme", "")); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return listsResult(svc)
	})
}

func registerSwitchListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"switch_list",
		mcp.WithDescription("Make a list current."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("List identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.App.SwitchList(id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return currentView(svc)
	})
}

func registerDeleteListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_list",
		mcp.WithDescription("Delete a list. The last remaining list cannot be deleted."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("List identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.App.DeleteList(id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return listsResult(svc)
	})
}

func registerAddSectionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_section",
		mcp.WithDescription("Append a section to the current list in one mode."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Section name."),
		),
		mcp.WithString("mode",
			mcp.Description("Mode the section belongs to. Defaults to the active mode."),
			modeEnum,
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		mode, err := svc.Mode(request.GetString("mode", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sec, err := svc.App.AddSection(mode, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]string{"id": sec.ID, "name": sec.Name, "mode": mode.String()})
	})
}

func registerRenameSectionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"rename_section",
		mcp.WithDescription("Rename a section of the current list."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Section identifier."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("New name."),
		),
		mcp.WithString("mode",
			mcp.Description("Mode the section belongs to. Defaults to the active mode."),
			modeEnum,
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Mode string `json:"mode"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		mode, err := svc.Mode(args.Mode)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.App.RenameSection(mode, args.ID, args.Name); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return modeView(svc, mode)
	})
}

func registerDeleteSectionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_section",
		mcp.WithDescription("Delete a section. Its items move to the end of the mode's default section, which cannot itself be deleted."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Section identifier."),
		),
		mcp.WithString("mode",
			mcp.Description("Mode the section belongs to. Defaults to the active mode."),
			modeEnum,
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		mode, err := svc.Mode(request.GetString("mode", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.App.DeleteSection(mode, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return modeView(svc, mode)
	})
}

func registerMoveSectionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_section",
		mcp.WithDescription("Move a section to sit immediately before another section."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Section to move."),
		),
		mcp.WithString("before_id",
			mcp.Required(),
			mcp.Description("Section it should precede."),
		),
		mcp.WithString("mode",
			mcp.Description("Mode the sections belong to. Defaults to the active mode."),
			modeEnum,
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID       string `json:"id"`
			BeforeID string `json:"before_id"`
			Mode     string `json:"mode"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		mode, err := svc.Mode(args.Mode)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.App.MoveSection(mode, args.ID, args.BeforeID); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return modeView(svc, mode)
	})
}

func registerAddItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_item",
		mcp.WithDescription("Add an item to the current list. It is appended to the given section and to the first section of the other mode."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Item text."),
		),
		mcp.WithString("section_id",
			mcp.Description("Section to append to. Defaults to the mode's first section."),
		),
		mcp.WithString("mode",
			mcp.Description("Mode section_id belongs to. Defaults to the active mode."),
			modeEnum,
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Text      string `json:"text"`
			SectionID string `json:"section_id"`
			Mode      string `json:"mode"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		mode, err := svc.Mode(args.Mode)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		it, err := svc.App.AddItem(mode, args.SectionID, args.Text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(toItemDTO(it))
	})
}

func registerRenameItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"rename_item",
		mcp.WithDescription("Change an item's text."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier."),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("New text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.App.RenameItem(id, text); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return itemResult(svc, id)
	})
}

func registerDeleteItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_item",
		mcp.WithDescription("Delete an item from the current list."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.App.DeleteItem(id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": id})
	})
}

func registerAdjustCountTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"adjust_count",
		mcp.WithDescription("Add delta to an item's have or want count. Counts never drop below zero."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier."),
		),
		mcp.WithString("count",
			mcp.Required(),
			mcp.Description("Which count to change."),
			mcp.Enum("have", "want"),
		),
		mcp.WithNumber("delta",
			mcp.Required(),
			mcp.Description("Signed amount to add."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID    string `json:"id"`
			Count string `json:"count"`
			Delta int    `json:"delta"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		adjust := svc.App.AdjustHave
		switch args.Count {
		case "have":
		case "want":
			adjust = svc.App.AdjustWant
		default:
			return mcp.NewToolResultError(fmt.Sprintf("unknown count %q (expected have or want)", args.Count)), nil
		}
		it, err := adjust(args.ID, args.Delta)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(toItemDTO(it))
	})
}

func registerToggleCompletedTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_completed",
		mcp.WithDescription("Check an item off (or back on) for the current shopping trip."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		it, err := svc.App.ToggleShopCompleted(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(toItemDTO(it))
	})
}

func registerMoveItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_item",
		mcp.WithDescription("Reorder an item within one mode. It lands before before_id, or at the end of section_id when before_id is omitted."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item to move."),
		),
		mcp.WithString("section_id",
			mcp.Description("Destination section. Defaults to the item's current section."),
		),
		mcp.WithString("before_id",
			mcp.Description("Item the moved item should precede."),
		),
		mcp.WithString("mode",
			mcp.Description("Mode to reorder in. Defaults to the active mode."),
			modeEnum,
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID        string `json:"id"`
			SectionID string `json:"section_id"`
			BeforeID  string `json:"before_id"`
			Mode      string `json:"mode"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		mode, err := svc.Mode(args.Mode)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.App.MoveItem(mode, args.ID, args.SectionID, args.BeforeID); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return modeView(svc, mode)
	})
}

func registerSetModeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_mode",
		mcp.WithDescription("Switch between home and shop. Leaving shop marks every checked-off item as fully stocked."),
		mcp.WithString("mode",
			mcp.Required(),
			mcp.Description("Mode to switch to."),
			modeEnum,
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("mode")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		mode, err := svc.Mode(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.App.SetMode(mode); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return currentView(svc)
	})
}

func listsResult(svc *Service) (*mcp.CallToolResult, error) {
	lists, err := svc.ListLists()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(map[string]any{"lists": lists, "count": len(lists)})
}

func currentView(svc *Service) (*mcp.CallToolResult, error) {
	return modeView(svc, svc.App.Mode())
}

func modeView(svc *Service, mode fmt.Stringer) (*mcp.CallToolResult, error) {
	v, err := svc.ViewList("", mode.String(), false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(v)
}

func itemResult(svc *Service, id string) (*mcp.CallToolResult, error) {
	dto, err := svc.ItemByID(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(dto)
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
