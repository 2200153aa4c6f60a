// Command sord loads RDF into an in-memory quad store, queries it, and
// writes it back out. There is no persisted database file to open: each
// invocation builds a fresh World and Model, does its work, and exits
// (SPEC_FULL.md §10.3 — "no environment variables are consulted by the
// core").
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	sord "github.com/insilications/sord-clr"
	"github.com/insilications/sord-clr/rdf"
)

var (
	baseURI    string
	inSyntax   string
	outSyntax  string
	graphIndex bool
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sord: cannot start logger:", err)
		os.Exit(1)
	}
	defer log.Sync()
	sugar := log.Sugar()

	root := &cobra.Command{
		Use:   "sord",
		Short: "An in-memory RDF quad store",
	}
	root.PersistentFlags().StringVar(&baseURI, "base", "", "base URI for relative IRIs in output")
	root.PersistentFlags().StringVar(&inSyntax, "in-syntax", "ttl", "input syntax: ttl or nq")
	root.PersistentFlags().StringVar(&outSyntax, "out-syntax", "ttl", "output syntax: ttl or nq")
	root.PersistentFlags().BoolVar(&graphIndex, "graph-index", false, "maintain graph-prefixed indices (required for nq output)")

	root.AddCommand(convertCmd(sugar), queryCmd(sugar), statsCmd(sugar))

	if err := root.Execute(); err != nil {
		sugar.Fatalw("sord: command failed", "error", err)
	}
}

func convertCmd(log *zap.SugaredLogger) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Read RDF in one syntax and write it in another",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, m, n, err := load(in)
			if err != nil {
				return err
			}
			log.Infow("loaded quads", "n", n, "path", in)

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("sord: creating output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			start := time.Now()
			if outSyntax == "nq" {
				ok, err := rdf.WriteNQuads(w, m)
				if err != nil {
					return fmt.Errorf("sord: writing n-quads: %w", err)
				}
				if !ok {
					return fmt.Errorf("sord: n-quads output requires --graph-index")
				}
			} else {
				pm := rdf.NewPrefixMap()
				pm.Base = rdf.URI(baseURI)
				if err := rdf.WriteTurtle(w, m, pm); err != nil {
					return fmt.Errorf("sord: writing turtle: %w", err)
				}
			}
			log.Infow("wrote output", "path", out, "elapsed", time.Since(start))
			_ = world
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file (required)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	cmd.MarkFlagRequired("in")
	return cmd
}

func queryCmd(log *zap.SugaredLogger) *cobra.Command {
	var in, s, p, o, g string
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print every stored quad matching a pattern (empty field = wildcard)",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, m, n, err := load(in)
			if err != nil {
				return err
			}
			log.Infow("loaded quads", "n", n, "path", in)

			pattern := sord.Quad{
				S: patternNode(world, s),
				P: patternNode(world, p),
				O: patternNode(world, o),
				G: patternNode(world, g),
			}
			it := m.Find(pattern)
			count := 0
			for !it.End() {
				q := it.Get()
				fmt.Printf("%s %s %s %s .\n", q.S, q.P, q.O, q.G)
				count++
				it.Next()
			}
			log.Infow("query complete", "matches", count)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file (required)")
	cmd.Flags().StringVar(&s, "s", "", "subject IRI (empty = wildcard)")
	cmd.Flags().StringVar(&p, "p", "", "predicate IRI (empty = wildcard)")
	cmd.Flags().StringVar(&o, "o", "", "object IRI (empty = wildcard)")
	cmd.Flags().StringVar(&g, "g", "", "graph IRI (empty = wildcard)")
	cmd.MarkFlagRequired("in")
	return cmd
}

func statsCmd(log *zap.SugaredLogger) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the number of quads and distinct nodes in the input",
		RunE: func(cmd *cobra.Command, args []string) error {
			world, m, n, err := load(in)
			if err != nil {
				return err
			}
			fmt.Printf("quads: %d\nnodes: %d\n", m.NumQuads(), world.NumNodes())
			log.Infow("stats", "n", n, "path", in)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file (required)")
	cmd.MarkFlagRequired("in")
	return cmd
}

// load reads the input file into a freshly built World/Model, selecting
// the index set and decoder by --in-syntax/--out-syntax/--graph-index.
func load(path string) (*sord.World, *sord.Model, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("sord: opening input: %w", err)
	}
	defer f.Close()

	world := sord.NewWorld()
	opts := []sord.Option{sord.WithIndexes(sord.IndexSPO | sord.IndexPOS | sord.IndexOSP)}
	if graphIndex || outSyntax == "nq" {
		opts = append(opts, sord.WithGraphIndex(true))
	}
	m := sord.NewModel(world, opts...)

	var n int
	if inSyntax == "nq" {
		n, err = rdf.LoadNQuads(f, world, m)
	} else {
		n, err = rdf.LoadTurtle(f, world, m)
	}
	if err != nil {
		return nil, nil, 0, err
	}
	return world, m, n, nil
}

// patternNode resolves a CLI flag value to a pattern term: an empty
// string is the wildcard, anything else is interned as an IRI. The
// reference taken here is never released: the process exits as soon as
// the query is printed, so there is no World left to account to.
func patternNode(world *sord.World, s string) *sord.Node {
	if s == "" {
		return sord.Wildcard
	}
	return world.NewIRI([]byte(s))
}
