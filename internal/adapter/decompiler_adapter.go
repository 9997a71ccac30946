package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	m "opaq.dev/pkg/opaq/internal/model"
)

// DefaultSourcesDir is the subdirectory of the output root that receives
// inspection listings.
const DefaultSourcesDir = "sources"

// listingTypesDir keeps type listings apart from the module index, so a type
// named after its module cannot overwrite it.
const listingTypesDir = "types"

// Decompiler is the downstream collaborator that turns a rewritten module into
// human-readable files for inspection.
type Decompiler interface {
	// Decompile writes the listing of modulePath below outRoot and returns
	// the directory it wrote to.
	Decompile(ctx context.Context, modulePath, outRoot m.Path) (m.Path, error)
}

// ListingDecompiler writes one .il listing per top-level type under types/
// plus an index listing for the module.
type ListingDecompiler struct {
	fs         ArtifactFS
	codec      ModuleCodec
	sourcesDir string
}

// NewListingDecompiler constructs a ListingDecompiler. An empty sourcesDir
// falls back to DefaultSourcesDir.
func NewListingDecompiler(fs ArtifactFS, codec ModuleCodec, sourcesDir string) *ListingDecompiler {
	if strings.TrimSpace(sourcesDir) == "" {
		sourcesDir = DefaultSourcesDir
	}

	return &ListingDecompiler{fs: fs, codec: codec, sourcesDir: sourcesDir}
}

// Decompile renders the module at modulePath into <outRoot>/<sources>/<name>.
func (d *ListingDecompiler) Decompile(ctx context.Context, modulePath, outRoot m.Path) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	module, err := d.codec.Load(modulePath)
	if err != nil {
		return "", err
	}

	base := filepath.Base(string(modulePath))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	dir := d.fs.JoinPath(string(outRoot), d.sourcesDir, name)

	if err := d.fs.MkdirAll(dir); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	typesDir := d.fs.JoinPath(string(dir), listingTypesDir)
	if err := d.fs.MkdirAll(typesDir); err != nil {
		return "", fmt.Errorf("create %s: %w", typesDir, err)
	}

	var index strings.Builder

	fmt.Fprintf(&index, ".module %s\n", module.Name)

	used := make(map[string]struct{}, len(module.Types))

	for _, typ := range module.Types {
		file := uniqueListingFileName(typ.FullName(), used)
		fmt.Fprintf(&index, ".file %s/%s // %s\n", listingTypesDir, file, typ.FullName())

		if err := d.fs.WriteFile(d.fs.JoinPath(string(typesDir), file), []byte(RenderType(typ))); err != nil {
			return "", fmt.Errorf("write listing for %s: %w", typ.FullName(), err)
		}
	}

	if err := d.fs.WriteFile(d.fs.JoinPath(string(dir), name+".il"), []byte(index.String())); err != nil {
		return "", fmt.Errorf("write module index: %w", err)
	}

	return dir, nil
}

func listingFileName(typeName string) string {
	replacer := strings.NewReplacer("/", "+", "<", "_", ">", "_", ":", "_", "\\", "_")
	return replacer.Replace(typeName) + ".il"
}

// uniqueListingFileName suffixes the file name when another type already
// sanitized to it and records the result in used.
func uniqueListingFileName(typeName string, used map[string]struct{}) string {
	file := listingFileName(typeName)
	stem := strings.TrimSuffix(file, ".il")

	for n := 2; ; n++ {
		if _, taken := used[strings.ToLower(file)]; !taken {
			break
		}

		file = fmt.Sprintf("%s~%d.il", stem, n)
	}

	used[strings.ToLower(file)] = struct{}{}

	return file
}
