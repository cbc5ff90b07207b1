package filesystem

import (
	"context"
	"fmt"

	"github.com/codeforge-ide/codeforge/backend/internal/fs"
	"github.com/codeforge-ide/codeforge/backend/internal/types"
)

// Provider implements filesystem operations as a tool provider
type Provider struct {
	basic      *BasicOps
	directory  *DirectoryOps
	operations *OperationOps
	metadata   *MetadataOps
	formats    *FormatOps
	archives   *ArchiveOps
	watch      *WatchOps
}

// NewProvider creates a filesystem provider backed by the given service
func NewProvider(svc *fs.Service) *Provider {
	ops := &Ops{Service: svc}
	return &Provider{
		basic:      &BasicOps{Ops: ops},
		directory:  &DirectoryOps{Ops: ops},
		operations: &OperationOps{Ops: ops},
		metadata:   &MetadataOps{Ops: ops},
		formats:    &FormatOps{Ops: ops},
		archives:   &ArchiveOps{Ops: ops},
		watch:      &WatchOps{Ops: ops},
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	var tools []types.Tool
	tools = append(tools, p.basic.GetTools()...)
	tools = append(tools, p.directory.GetTools()...)
	tools = append(tools, p.operations.GetTools()...)
	tools = append(tools, p.metadata.GetTools()...)
	tools = append(tools, p.formats.GetTools()...)
	tools = append(tools, p.archives.GetTools()...)
	tools = append(tools, p.watch.GetTools()...)

	return types.Service{
		ID:          "filesystem",
		Name:        "Filesystem Service",
		Description: "File and directory operations with change notification",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"read",
			"write",
			"create",
			"delete",
			"list",
			"stat",
			"rename",
			"copy",
			"move",
			"watch",
			"formats",
			"archives",
		},
		Tools: tools,
	}
}

// Execute runs a filesystem operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "filesystem.read":
		return p.basic.Read(ctx, params, appCtx)
	case "filesystem.write":
		return p.basic.Write(ctx, params, appCtx)
	case "filesystem.create":
		return p.basic.Create(ctx, params, appCtx)
	case "filesystem.delete":
		return p.basic.Delete(ctx, params, appCtx)
	case "filesystem.exists":
		return p.basic.Exists(ctx, params, appCtx)
	case "filesystem.list":
		return p.directory.List(ctx, params, appCtx)
	case "filesystem.mkdir":
		return p.directory.Mkdir(ctx, params, appCtx)
	case "filesystem.rmdir":
		return p.directory.Rmdir(ctx, params, appCtx)
	case "filesystem.total_size":
		return p.directory.TotalSize(ctx, params, appCtx)
	case "filesystem.rename":
		return p.operations.Rename(ctx, params, appCtx)
	case "filesystem.copy":
		return p.operations.Copy(ctx, params, appCtx)
	case "filesystem.move":
		return p.operations.Move(ctx, params, appCtx)
	case "filesystem.stat":
		return p.metadata.Stat(ctx, params, appCtx)
	case "filesystem.mime_type":
		return p.metadata.MimeType(ctx, params, appCtx)
	case "filesystem.read_json":
		return p.formats.ReadJSON(ctx, params, appCtx)
	case "filesystem.write_json":
		return p.formats.WriteJSON(ctx, params, appCtx)
	case "filesystem.read_yaml":
		return p.formats.ReadYAML(ctx, params, appCtx)
	case "filesystem.write_yaml":
		return p.formats.WriteYAML(ctx, params, appCtx)
	case "filesystem.read_toml":
		return p.formats.ReadTOML(ctx, params, appCtx)
	case "filesystem.write_toml":
		return p.formats.WriteTOML(ctx, params, appCtx)
	case "filesystem.zip_create":
		return p.archives.ZipCreate(ctx, params, appCtx)
	case "filesystem.zip_extract":
		return p.archives.ZipExtract(ctx, params, appCtx)
	case "filesystem.targz_create":
		return p.archives.TarGzCreate(ctx, params, appCtx)
	case "filesystem.targz_extract":
		return p.archives.TarGzExtract(ctx, params, appCtx)
	case "filesystem.watch":
		return p.watch.Watch(ctx, params, appCtx)
	case "filesystem.unwatch":
		return p.watch.Unwatch(ctx, params, appCtx)
	case "filesystem.watches":
		return p.watch.Watches(ctx, params, appCtx)
	case "filesystem.get_config":
		return p.watch.GetConfig(ctx, params, appCtx)
	case "filesystem.set_config":
		return p.watch.SetConfig(ctx, params, appCtx)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
