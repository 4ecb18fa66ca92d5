package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/daviddossett/targeted-selection/internal/domain/design"
)

type findOptions struct {
	limit int
}

// findEntry is one searchable instance.
type findEntry struct {
	id     string
	label  string
	text   string
	target string
}

// textProperties are the property keys whose values are shown on screen.
var textProperties = []string{"text", "content", "title"}

func newFindCmd(app *AppContext, rootFlags *rootFlags) *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-search instances by id, definition label or visible text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.find")

			doc, source, err := app.OpenDocument(ctx, rootFlags.documentPath)
			if err != nil {
				return newCommandError("search", fmt.Sprintf("loading %s", source), err, documentHint(err, doc))
			}

			entries := findEntries(doc)
			matches := searchEntries(entries, args[0], opts.limit)
			logger.Debug(ctx, "instances searched", "query", args[0], "matches", len(matches))
			if len(matches) == 0 {
				ids := lo.Map(entries, func(e findEntry, _ int) string { return e.id })
				err := fmt.Errorf("no instance matches %q", args[0])
				return newCommandError("search", "matching instances", err,
					didYouMean(args[0], ids, "Run 'appbuilder tree' to list instance ids."))
			}

			renderMatches(cmd.OutOrStdout(), matches)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "Maximum number of matches to print")

	return cmd
}

func findEntries(doc design.Document) []findEntry {
	entries := make([]findEntry, 0)
	for _, node := range flattenNodes(doc.ResolveTree(false)) {
		entry := findEntry{id: node.Instance.ID}
		if node.Err == nil {
			entry.label = node.Resolved.Definition.Label
			texts := lo.FilterMap(textProperties, func(key string, _ int) (string, bool) {
				value := node.Resolved.Properties.String(key)
				return value, value != ""
			})
			entry.text = strings.Join(texts, " ")
		}
		entry.target = strings.Join([]string{entry.id, entry.label, entry.text}, " ")
		entries = append(entries, entry)
	}
	return entries
}

func flattenNodes(nodes []design.ResolvedNode) []design.ResolvedNode {
	out := make([]design.ResolvedNode, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node)
		out = append(out, flattenNodes(node.Children)...)
	}
	return out
}

// searchEntries ranks entries by fuzzy distance, closest first, ties kept in
// document order.
func searchEntries(entries []findEntry, query string, limit int) []findEntry {
	targets := lo.Map(entries, func(e findEntry, _ int) string { return e.target })
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	matches := lo.Map(ranks, func(r fuzzy.Rank, _ int) findEntry { return entries[r.OriginalIndex] })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func renderMatches(w io.Writer, matches []findEntry) {
	width := lo.Max(lo.Map(matches, func(e findEntry, _ int) int { return len(e.id) }))
	for _, match := range matches {
		label := valueOrFallback(match.label, "(missing component)")
		if match.text != "" {
			fmt.Fprintf(w, "%-*s  %s  %q\n", width, match.id, label, match.text)
			continue
		}
		fmt.Fprintf(w, "%-*s  %s\n", width, match.id, label)
	}
}
