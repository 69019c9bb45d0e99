package generate

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cmmoran/reflgen/internal/cursor"
	"github.com/cmmoran/reflgen/internal/extractor"
	"github.com/cmmoran/reflgen/internal/generator"
	"github.com/cmmoran/reflgen/internal/model"
	"github.com/cmmoran/reflgen/pkg/action/snapshot"
	"github.com/cmmoran/reflgen/pkg/manifest"
	"github.com/cmmoran/reflgen/pkg/options"
)

// Result describes one run. Sources holds the rendered output keyed by path,
// whether or not it was written.
type Result struct {
	Files     []string
	Classes   []string
	IndexFile string
	Sources   map[string][]byte
}

// Run loads, extracts and generates per opts. Extraction completes for every
// unit before the first file is generated.
func Run(ctx context.Context, opts *options.Options) (*Result, error) {
	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	l := slog.Default().With("in_dir", opts.InDir)

	units, err := cursor.Load(ctx, cursor.Frontend(opts.Frontend), opts.InDir, opts.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer func() {
		for _, u := range units {
			u.Close()
		}
	}()

	mods, symbols := extractor.New(extractor.WithLogger(l)).Run(units)
	if len(opts.ExcludeTypes) > 0 {
		mods, symbols = exclude(mods, opts)
	}
	l.Debug("extracted", "units", len(units), "modules", len(mods), "classes", symbols.Len())

	indexOpt, err := indexOption(opts)
	if err != nil {
		return nil, err
	}
	refl := generator.NewReflection(symbols,
		generator.WithLogger(l),
		generator.WithSuffix(opts.ReflectionSuffix),
		indexOpt,
	)
	gens := []generator.Generator{
		refl,
		generator.NewSerializer(symbols,
			generator.WithLogger(l),
			generator.WithSuffix(opts.SerializerSuffix),
			indexOpt,
		),
	}

	var outputs []*generator.Output
	for _, m := range mods {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		for _, g := range gens {
			out, gerr := g.Generate(m)
			if gerr != nil {
				return nil, fmt.Errorf("%s generator: %s: %w", g.Name(), m.File, gerr)
			}
			if out != nil {
				outputs = append(outputs, out)
			}
		}
	}
	for _, g := range gens {
		outs, ferr := g.Finish()
		if ferr != nil {
			return nil, fmt.Errorf("%s generator: finish: %w", g.Name(), ferr)
		}
		outputs = append(outputs, outs...)
	}

	res := &Result{
		Classes: refl.Classes(),
		Sources: make(map[string][]byte, len(outputs)),
	}
	if opts.IndexDir != "" && len(res.Classes) > 0 {
		res.IndexFile = filepath.Join(opts.IndexDir, generator.ReflectionIndexFile)
	}
	for _, out := range outputs {
		var buf bytes.Buffer
		if err = out.File.Render(&buf); err != nil {
			return nil, fmt.Errorf("render %s: %w", out.Path, err)
		}
		res.Files = append(res.Files, out.Path)
		res.Sources[out.Path] = buf.Bytes()
		if opts.DryRun {
			continue
		}
		if err = write(out.Path, buf.Bytes()); err != nil {
			return nil, err
		}
		l.Log(ctx, slog.Level(-8), "wrote file", "file", out.Path)
	}

	if !opts.DryRun && opts.ManifestPath != "" && len(res.Classes) > 0 {
		if err = record(opts, res); err != nil {
			return nil, err
		}
	}
	l.Info("generation complete", "files", len(res.Files), "classes", len(res.Classes), "dry_run", opts.DryRun)
	return res, nil
}

// exclude drops classes named in opts.ExcludeTypes and rebuilds the symbol
// table so that no generated code refers to them.
func exclude(mods []*model.SchemaModule, opts *options.Options) ([]*model.SchemaModule, *model.SymbolTable) {
	symbols := model.NewSymbolTable()
	kept := mods[:0]
	for _, m := range mods {
		classes := m.Classes[:0]
		for _, c := range m.Classes {
			if opts.Excluded(c.Name) {
				slog.Debug("class excluded", "class", c.QualifiedName, "file", m.File)
				continue
			}
			classes = append(classes, c)
			symbols.Add(c)
		}
		m.Classes = classes
		if len(classes) > 0 {
			kept = append(kept, m)
		}
	}
	return kept, symbols
}

func indexOption(opts *options.Options) (generator.Option, error) {
	if opts.IndexDir == "" {
		return generator.WithIndex("", "", ""), nil
	}
	pkgPath, err := cursor.ImportPath(opts.IndexDir)
	if err != nil {
		return nil, fmt.Errorf("index directory: %w", err)
	}
	return generator.WithIndex(opts.IndexDir, pkgPath, opts.IndexPackage), nil
}

func write(path string, src []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func record(opts *options.Options, res *Result) error {
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	files := make([]string, 0, len(res.Files))
	for _, f := range res.Files {
		if rel, err := filepath.Rel(opts.InDir, f); err == nil {
			f = filepath.ToSlash(rel)
		}
		files = append(files, f)
	}
	_, err := snapshot.Record(opts.ManifestPath, manifest.Snapshot{
		Name:    filepath.Base(opts.InDir),
		Version: version,
		File:    res.IndexFile,
		Files:   files,
		Classes: res.Classes,
	})
	if err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	return nil
}
