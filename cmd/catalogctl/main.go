// catalogctl manages catalog files for the explorer server.
//
// Usage:
//
//	catalogctl export   --out catalog.db
//	catalogctl import   --dir ~/Documents --out catalog.yaml [--name "This PC"]
//	catalogctl validate --catalog catalog.db
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/winexplorer/backend/internal/catalog"
	"github.com/winexplorer/backend/internal/domain/item"
	"github.com/winexplorer/backend/internal/fsimport"
	"github.com/winexplorer/backend/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "export":
		err = runExport(args)
	case "import":
		err = runImport(args)
	case "validate":
		err = runValidate(args)
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalogctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: catalogctl <command> [flags]

commands:
  export    write the built-in dataset to a catalog file
  import    snapshot a directory tree into a catalog file
  validate  check a catalog file for structural errors`)
}

func runExport(args []string) error {
	flags := pflag.NewFlagSet("export", pflag.ContinueOnError)
	out := flags.StringP("out", "o", "", "output file (.db, .sqlite, .yaml)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return errors.New("export: --out is required")
	}
	return write(*out, catalog.Seed(time.Now().UTC()))
}

func runImport(args []string) error {
	flags := pflag.NewFlagSet("import", pflag.ContinueOnError)
	dir := flags.StringP("dir", "d", "", "directory to snapshot")
	out := flags.StringP("out", "o", "", "output file (.db, .sqlite, .yaml)")
	name := flags.String("name", "", "display name of the root folder")
	hidden := flags.Bool("hidden", false, "include dot files and directories")
	depth := flags.Int("max-depth", 0, "maximum depth below the root (0 = unlimited)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *dir == "" || *out == "" {
		return errors.New("import: --dir and --out are required")
	}

	items, err := fsimport.Snapshot(*dir, fsimport.Options{
		RootName:      *name,
		IncludeHidden: *hidden,
		MaxDepth:      *depth,
	})
	if err != nil {
		return err
	}
	if _, err := catalog.New(items); err != nil {
		return fmt.Errorf("import: snapshot is not a valid catalog: %w", err)
	}
	return write(*out, items)
}

func runValidate(args []string) error {
	flags := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	path := flags.StringP("catalog", "c", "", "catalog file to check")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return errors.New("validate: --catalog is required")
	}

	src, closeSrc, err := store.Open(*path, time.Now())
	if err != nil {
		return err
	}
	defer closeSrc()

	cat, err := store.LoadCatalog(context.Background(), src)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok, %d items, root %q\n", *path, cat.Len(), cat.Root().Name)
	return nil
}

func write(path string, items []item.Item) error {
	sink, closeSink, err := store.Create(path)
	if err != nil {
		return err
	}
	if err := sink.Save(context.Background(), items); err != nil {
		closeSink()
		return err
	}
	if err := closeSink(); err != nil {
		return err
	}
	fmt.Printf("wrote %d items to %s\n", len(items), path)
	return nil
}
