package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/ui"
	"github.com/idilsaglam/tasklist/internal/view"
)

// listOptions tune `ls` output.
type listOptions struct {
	Filter view.Filter
	Group  bool // split into Active / Completed sections
}

func newListCmd(a *app) *cobra.Command {
	var (
		filterName string
		group      bool
		markdown   bool
	)
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the task list once",
		Example: `  todo ls
  todo ls --filter active
  todo ls --group --seed tasks.yaml
  todo ls --markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := view.ParseFilter(filterName)
			if err != nil {
				return err
			}
			tasks, err := a.tasks()
			if err != nil {
				return err
			}
			opt := listOptions{Filter: f, Group: group}

			if markdown {
				out, err := renderMarkdown(markdownList(tasks, opt))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), panelList(tasks, opt))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filterName, "filter", "f", "all", "show all, active or completed tasks")
	cmd.Flags().BoolVarP(&group, "group", "g", false, "group output by active/completed")
	cmd.Flags().BoolVarP(&markdown, "markdown", "m", false, "render as a markdown task list")
	return cmd
}

// -------------- rendering helpers --------------

func panelList(tasks []model.Task, opt listOptions) string {
	t := ui.Current()
	remaining := view.Remaining(tasks)
	done := len(tasks) - remaining

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("TODO"),
		t.Success.Render("✔"), done,
		t.Pending.Render("•"), remaining,
		t.Accent.Render("Total"), len(tasks),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(done, len(tasks), 28)))
	lines = append(lines, "")

	visible := view.Visible(tasks, opt.Filter)
	if opt.Group {
		lines = append(lines, groupLines(visible)...)
	} else {
		lines = append(lines, flatLines(visible)...)
	}
	lines = append(lines, "")
	lines = append(lines, view.ItemsLeft(remaining)+"   "+filterBar(opt.Filter))
	return ui.Panel(lines)
}

func filterBar(selected view.Filter) string {
	t := ui.Current()
	labels := make([]string, 0, 3)
	for _, f := range view.Filters() {
		if f == selected {
			labels = append(labels, t.Selected.Render("["+f.Label()+"]"))
			continue
		}
		labels = append(labels, t.Muted.Render(f.Label()))
	}
	return strings.Join(labels, " ")
}

func flatLines(tasks []model.Task) []string {
	t := ui.Current()
	if len(tasks) == 0 {
		return []string{t.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		idx := fmt.Sprintf("%2d.", task.ID)
		box := t.Muted.Render(t.BoxUnchecked)
		text := truncate(task.Text, 80)
		if task.Completed {
			box = t.Success.Render(t.BoxChecked)
			text = t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, text))
	}
	return out
}

func groupLines(tasks []model.Task) []string {
	t := ui.Current()
	var lines []string
	for i, f := range []view.Filter{view.Active, view.Completed} {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Accent.Render(f.Label()))
		section := view.Visible(tasks, f)
		if len(section) == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
			continue
		}
		lines = append(lines, flatLines(section)...)
	}
	return lines
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func markdownList(tasks []model.Task, opt listOptions) string {
	var b strings.Builder
	b.WriteString("# TODO\n\n")

	write := func(list []model.Task) {
		if len(list) == 0 {
			b.WriteString("_no tasks_\n")
			return
		}
		for _, task := range list {
			box := " "
			if task.Completed {
				box = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", box, escapeMarkdown(task.Text))
		}
	}

	visible := view.Visible(tasks, opt.Filter)
	if opt.Group {
		for _, f := range []view.Filter{view.Active, view.Completed} {
			fmt.Fprintf(&b, "## %s\n\n", f.Label())
			write(view.Visible(visible, f))
			b.WriteString("\n")
		}
	} else {
		write(visible)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s\n", view.ItemsLeft(view.Remaining(tasks)))
	return b.String()
}

// mdEscaper backslash-escapes the punctuation that can open inline or block
// markup, so task text is always shown literally.
var mdEscaper = strings.NewReplacer(
	"\\", "\\\\", "`", "\\`", "*", "\\*", "_", "\\_",
	"[", "\\[", "]", "\\]", "<", "\\<", ">", "\\>",
	"#", "\\#", "!", "\\!", "|", "\\|", "~", "\\~",
	"+", "\\+", "-", "\\-", "&", "\\&",
	"\n", " ", "\r", " ",
)

func escapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}

func renderMarkdown(md string) (string, error) {
	style := "dark"
	if ui.Current().Name == "mono" {
		style = "ascii"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
