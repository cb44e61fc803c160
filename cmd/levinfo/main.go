// Command levinfo prints a YAML summary of .LEV files and can rewrite
// older files in the current format.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/utkedit/level"
	"github.com/milk9111/utkedit/levels"
)

func main() {
	upgrade := flag.Bool("upgrade", false, "rewrite files older than the current format version in place")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-upgrade] FILE.LEV...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	for _, path := range flag.Args() {
		if err := process(enc, path, *upgrade); err != nil {
			log.Printf("%s: %v", path, err)
			failed = true
		}
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
	if failed {
		os.Exit(1)
	}
}

func process(enc *yaml.Encoder, path string, upgrade bool) error {
	data, err := levels.ReadFile(path)
	if err != nil {
		return err
	}
	lvl, err := level.Decode(data)
	if err != nil {
		return err
	}

	version := fileVersion(data)
	if upgrade && version < level.Version {
		out, err := lvl.MarshalBinary()
		if err != nil {
			return err
		}
		w := levels.FileWriter{Dir: filepath.Dir(path)}
		if err := w.Write(filepath.Base(path), out); err != nil {
			return err
		}
		log.Printf("%s: upgraded from version %d to %d", path, version, level.Version)
		version = level.Version
	}
	return enc.Encode(summarize(filepath.Base(path), version, lvl))
}
