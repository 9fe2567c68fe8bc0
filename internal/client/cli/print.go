package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/client/models"
)

const excerptLen = 60

func (a *App) printStale(stale bool, at time.Time) {
	if stale {
		fmt.Fprintf(a.out, "(offline: showing the copy saved at %s)\n", at.Local().Format("2006-01-02 15:04"))
	}
}

func printThemes(w io.Writer, themes []models.Theme) {
	if len(themes) == 0 {
		fmt.Fprintln(w, "No themes.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESCRIPTION\tPOSTS")
	for _, t := range themes {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", t.ID, t.Description, len(t.Posts))
	}
	_ = tw.Flush()
}

func printPosts(w io.Writer, posts []models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTHEME\tAUTHOR\tTITLE\tTEXT")
	for _, p := range posts {
		date := ""
		if d := p.ParsedDate(); !d.IsZero() {
			date = d.Format("2006-01-02 15:04")
		}
		theme, author := "", ""
		if p.Theme != nil {
			theme = p.Theme.Description
		}
		if p.Author != nil {
			author = p.Author.Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, date, theme, author, p.Title, excerpt(p.Text))
	}
	_ = tw.Flush()
}

// excerpt flattens s to one line of at most excerptLen runes.
func excerpt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= excerptLen {
		return s
	}
	return string(r[:excerptLen-1]) + "…"
}
