package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled expr filter over artists.
type Filter struct {
	program *vm.Program
	expr    string
}

// filterHelpers are the static helper functions available in expressions.
func filterHelpers() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"now":   time.Now,
	}
}

// CompileFilter compiles an expr filter expression.
func CompileFilter(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(filterHelpers()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{program: program, expr: expression}, nil
}

// Evaluate evaluates the filter against an artist.
func (f *Filter) Evaluate(artist ArtistInfo) bool {
	env := filterHelpers()

	// Tag and genre helpers bound to this artist
	env["hasTag"] = func(tag string) bool {
		for _, t := range artist.TagNames {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	}
	env["hasGenre"] = func(genre string) bool {
		for _, g := range artist.Genres {
			if strings.EqualFold(g, genre) {
				return true
			}
		}
		return false
	}

	// Direct artist properties for convenience
	env["Artist"] = artist
	env["Name"] = artist.Name
	env["Type"] = artist.Type
	env["Status"] = artist.Status
	env["Ended"] = artist.Ended
	env["Genres"] = artist.Genres
	env["Tags"] = artist.TagNames
	env["Monitored"] = artist.Monitored
	env["Path"] = artist.Path
	env["Added"] = artist.Added
	env["AlbumCount"] = artist.AlbumCount
	env["TrackCount"] = artist.TrackCount
	env["TrackFileCount"] = artist.TrackFileCount
	env["SizeOnDisk"] = artist.SizeOnDisk
	env["PercentOfTracks"] = artist.PercentOfTracks

	result, err := expr.Run(f.program, env)
	if err != nil {
		// Evaluation errors skip the artist rather than aborting the run.
		return false
	}

	boolResult, ok := result.(bool)
	return ok && boolResult
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expr
}
