package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"inkwell/internal/bootstrap"
	editordto "inkwell/internal/modules/editor/dto"
	"inkwell/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var vaultPath string

	root := &cobra.Command{
		Use:           "inkwell",
		Short:         "Terminal notebook for a markdown vault",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&vaultPath, "vault", "", "vault path (defaults to $INKWELL_VAULT, then the working directory)")

	root.AddCommand(newTUICmd(&vaultPath))
	root.AddCommand(newNoteCmd(&vaultPath))
	root.AddCommand(newTodoCmd(&vaultPath))
	root.AddCommand(newTagCmd(&vaultPath))
	root.AddCommand(newImportCmd(&vaultPath))
	root.AddCommand(newExportCmd(&vaultPath))
	root.AddCommand(newAssistCmd(&vaultPath))
	root.AddCommand(newReindexCmd(&vaultPath))
	root.AddCommand(newDoctorCmd(&vaultPath))
	return root
}

func loadApp(vaultPath string, console bool) (*bootstrap.App, error) {
	cfg, err := config.New(vaultPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, console)
}

func newTUICmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the inkwell terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, false)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newNoteCmd(vaultPath *string) *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Create and manage notes"}

	var newContent string
	var newTags []string
	newCmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			out, err := app.NotesCLI.Create(context.Background(), strings.Join(args, " "), newContent, newTags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) file=%s\n", out.Title, out.ID, out.Path)
			return nil
		},
	}
	newCmd.Flags().StringVar(&newContent, "content", "", "initial note body")
	newCmd.Flags().StringSliceVar(&newTags, "tags", nil, "tags")
	note.AddCommand(newCmd)

	var listSearch, listTag, listSort, listOrder string
	var listFavorites bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			notes, err := app.NotesCLI.List(context.Background(), listSearch, listFavorites, listTag, listSort, listOrder)
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notes")
				return nil
			}
			for _, n := range notes {
				mark := " "
				if n.Favorite {
					mark = "★"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\t%s\n", n.ID, mark, n.Title, n.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&listSearch, "search", "", "match title or content")
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "favorites only")
	listCmd.Flags().StringVar(&listTag, "tag", "", "filter by tag slug")
	listCmd.Flags().StringVar(&listSort, "sort", "updated", "sort field: updated|created|title")
	listCmd.Flags().StringVar(&listOrder, "order", "desc", "sort order: asc|desc")
	note.AddCommand(listCmd)

	var showID string
	showCmd := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show a note with its content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			n, err := app.NotesCLI.Get(context.Background(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\ntitle: %s\nslug: %s\nfile: %s\nfavorite: %t\ntags: %s\ncreated: %s\nupdated: %s\n",
				n.ID, n.Title, n.Slug, n.Path, n.Favorite, strings.Join(n.Tags, ", "),
				n.CreatedAt.Format(time.RFC3339), n.UpdatedAt.Format(time.RFC3339))
			if strings.TrimSpace(n.Content) != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), n.Content)
			}
			return nil
		},
	}
	showCmd.Flags().StringVar(&showID, "id", "", "note id")
	note.AddCommand(showCmd)

	var editID, editTitle, editContent string
	editCmd := &cobra.Command{
		Use:   "edit --id <id>",
		Short: "Update a note's title or content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(editID) == "" {
				return fmt.Errorf("--id is required")
			}
			if editTitle == "" && editContent == "" {
				return fmt.Errorf("--title or --content is required")
			}
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			ctx := context.Background()
			before, err := app.NotesCLI.Get(ctx, editID)
			if err != nil {
				return err
			}
			nextTitle, nextContent := before.Title, before.Content
			if editTitle != "" {
				nextTitle = editTitle
			}
			if editContent != "" {
				nextContent = editContent
			}
			err = app.EditorCLI.OnEdit(ctx, editID, editordto.SnapshotInput{Title: before.Title, Content: before.Content}, func(ctx context.Context) error {
				_, err := app.NotesCLI.Update(ctx, editID, nextTitle, nextContent)
				return err
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", nextTitle, editID)
			return nil
		},
	}
	editCmd.Flags().StringVar(&editID, "id", "", "note id")
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editContent, "content", "", "new body")
	note.AddCommand(editCmd)

	var rmID string
	rmCmd := &cobra.Command{
		Use:   "rm --id <id>",
		Short: "Delete a note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(rmID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			if err := app.NotesCLI.Delete(context.Background(), rmID); err != nil {
				return err
			}
			app.EditorCLI.OnDocumentDeleted(rmID)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", rmID)
			return nil
		},
	}
	rmCmd.Flags().StringVar(&rmID, "id", "", "note id")
	note.AddCommand(rmCmd)

	var favID string
	favCmd := &cobra.Command{
		Use:   "fav --id <id>",
		Short: "Toggle a note's favorite flag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(favID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			out, err := app.NotesCLI.ToggleFavorite(context.Background(), favID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "favorite=%t %s (%s)\n", out.Favorite, out.Title, out.ID)
			return nil
		},
	}
	favCmd.Flags().StringVar(&favID, "id", "", "note id")
	note.AddCommand(favCmd)

	return note
}

func newTodoCmd(vaultPath *string) *cobra.Command {
	todo := &cobra.Command{Use: "todo", Short: "Manage the vault todo list"}

	todo.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			out, err := app.TodosCLI.Add(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", out.Text, out.ID)
			return nil
		},
	})

	var listAll bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List open todos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			todos, err := app.TodosCLI.List(context.Background(), listAll)
			if err != nil {
				return err
			}
			if len(todos) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no todos")
				return nil
			}
			for _, t := range todos {
				mark := "[ ]"
				if t.Done {
					mark = "[x]"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", mark, t.ID, t.Text)
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&listAll, "all", false, "include done todos")
	todo.AddCommand(listCmd)

	var doneID string
	doneCmd := &cobra.Command{
		Use:   "done --id <id>",
		Short: "Toggle a todo between open and done",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(doneID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			out, err := app.TodosCLI.Toggle(context.Background(), doneID)
			if err != nil {
				return err
			}
			state := "reopened"
			if out.Done {
				state = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", state, out.Text, out.ID)
			return nil
		},
	}
	doneCmd.Flags().StringVar(&doneID, "id", "", "todo id")
	todo.AddCommand(doneCmd)

	var rmID string
	rmCmd := &cobra.Command{
		Use:   "rm --id <id>",
		Short: "Remove a todo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(rmID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			if err := app.TodosCLI.Remove(context.Background(), rmID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", rmID)
			return nil
		},
	}
	rmCmd.Flags().StringVar(&rmID, "id", "", "todo id")
	todo.AddCommand(rmCmd)

	todo.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all done todos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			cleared, err := app.TodosCLI.ClearDone(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cleared %d done todos\n", cleared)
			return nil
		},
	})

	return todo
}

func newTagCmd(vaultPath *string) *cobra.Command {
	tag := &cobra.Command{Use: "tag", Short: "Browse tags and tag neighborhoods"}

	var listLimit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tags by note count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			tags, err := app.TagsCLI.ListTags(context.Background(), listLimit)
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tags")
				return nil
			}
			for _, t := range tags {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", t.Slug, t.Name, t.NoteCount)
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "cap the number of tags (0 = all)")
	tag.AddCommand(listCmd)

	var showSlug string
	showCmd := &cobra.Command{
		Use:   "show --slug <slug>",
		Short: "List notes carrying a tag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showSlug) == "" {
				return fmt.Errorf("--slug is required")
			}
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			notes, err := app.TagsCLI.NotesWithTag(context.Background(), showSlug)
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notes")
				return nil
			}
			for _, n := range notes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", n.NoteID, n.Title)
			}
			return nil
		},
	}
	showCmd.Flags().StringVar(&showSlug, "slug", "", "tag slug")
	tag.AddCommand(showCmd)

	var relatedNoteID string
	relatedCmd := &cobra.Command{
		Use:   "related --note-id <id>",
		Short: "List notes sharing tags with a note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(relatedNoteID) == "" {
				return fmt.Errorf("--note-id is required")
			}
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			related, err := app.TagsCLI.Related(context.Background(), relatedNoteID)
			if err != nil {
				return err
			}
			if len(related) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no related notes")
				return nil
			}
			for _, r := range related {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tdistance=%d via=%s\n", r.NoteID, r.Title, r.Distance, r.Via)
			}
			return nil
		},
	}
	relatedCmd.Flags().StringVar(&relatedNoteID, "note-id", "", "note id")
	tag.AddCommand(relatedCmd)

	return tag
}

func newImportCmd(vaultPath *string) *cobra.Command {
	importCmd := &cobra.Command{Use: "import", Short: "Import external files as notes"}

	var title string
	var tags []string

	fileCmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Import a text or markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			out, err := app.NotesCLI.ImportFile(context.Background(), args[0], title, tags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%s) file=%s\n", out.Title, out.ID, out.Path)
			return nil
		},
	}
	fileCmd.Flags().StringVar(&title, "title", "", "note title (defaults to the file name)")
	fileCmd.Flags().StringSliceVar(&tags, "tags", nil, "tags")

	pdfCmd := &cobra.Command{
		Use:   "pdf <path>",
		Short: "Import a PDF's extracted text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			out, err := app.NotesCLI.ImportPDF(context.Background(), args[0], title, tags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%s) file=%s\n", out.Title, out.ID, out.Path)
			return nil
		},
	}
	pdfCmd.Flags().StringVar(&title, "title", "", "note title (defaults to the file name)")
	pdfCmd.Flags().StringSliceVar(&tags, "tags", nil, "tags")

	importCmd.AddCommand(fileCmd, pdfCmd)
	return importCmd
}

func newExportCmd(vaultPath *string) *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Export notes to the exports directory"}

	var noteID, noteFormat string
	noteCmd := &cobra.Command{
		Use:   "note --id <id>",
		Short: "Export one note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(noteID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.ExportNote(context.Background(), noteID, noteFormat)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", out.Path)
			return nil
		},
	}
	noteCmd.Flags().StringVar(&noteID, "id", "", "note id")
	noteCmd.Flags().StringVar(&noteFormat, "format", "markdown", "export format: markdown|html")
	export.AddCommand(noteCmd)

	var allFormat string
	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Export every note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			files, err := app.ExportCLI.ExportAll(context.Background(), allFormat)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notes to export")
				return nil
			}
			for _, f := range files {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s\n", f.Path)
			}
			return nil
		},
	}
	allCmd.Flags().StringVar(&allFormat, "format", "markdown", "export format: markdown|html")
	export.AddCommand(allCmd)

	export.AddCommand(&cobra.Command{
		Use:   "zip",
		Short: "Export the whole vault as a zip archive",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.ExportArchive(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "archive written: %s\n", out.Path)
			return nil
		},
	})

	return export
}

func newAssistCmd(vaultPath *string) *cobra.Command {
	assist := &cobra.Command{Use: "assist", Short: "Text transform actions"}

	assist.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available actions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			actions, err := app.AssistCLI.Actions(context.Background())
			if err != nil {
				return err
			}
			for _, a := range actions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.ID, a.Title)
			}
			return nil
		},
	})

	var actionID, text, noteID string
	var apply bool
	runCmd := &cobra.Command{
		Use:   "run --action <id>",
		Short: "Run an action on text or a note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(actionID) == "" {
				return fmt.Errorf("--action is required")
			}
			if (text == "") == (noteID == "") {
				return fmt.Errorf("exactly one of --text or --note-id is required")
			}
			if apply && noteID == "" {
				return fmt.Errorf("--apply requires --note-id")
			}
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			ctx := context.Background()
			input := text
			noteTitle := ""
			if noteID != "" {
				note, err := app.NotesCLI.Get(ctx, noteID)
				if err != nil {
					return err
				}
				input = note.Content
				noteTitle = note.Title
			}
			out, err := app.AssistCLI.Transform(ctx, actionID, input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "action=%s provider=%s\n", out.ActionID, out.Provider)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			if apply {
				if _, err := app.NotesCLI.Update(ctx, noteID, noteTitle, out.Text); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "applied to %s\n", noteID)
			}
			return nil
		},
	}
	runCmd.Flags().StringVar(&actionID, "action", "", "action id")
	runCmd.Flags().StringVar(&text, "text", "", "text to transform")
	runCmd.Flags().StringVar(&noteID, "note-id", "", "note whose content is transformed")
	runCmd.Flags().BoolVar(&apply, "apply", false, "write the result back to the note")
	assist.AddCommand(runCmd)

	return assist
}

func newReindexCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite index from vault markdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath, true)
			if err != nil {
				return err
			}
			if err := app.NotesCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

type doctorCheck struct {
	name   string
	ok     bool
	detail string
}

func newDoctorCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check vault layout, index database, and assist provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(*vaultPath)
			if err != nil {
				return err
			}
			checks := vaultChecks(cfg)
			checks = append(checks, appChecks(cfg)...)

			failed := false
			for _, c := range checks {
				marker := "OK"
				if !c.ok {
					marker = "FAIL"
					failed = true
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", marker, c.name, c.detail)
			}
			if failed {
				return fmt.Errorf("doctor found failing checks")
			}
			return nil
		},
	}
}

func vaultChecks(cfg config.Config) []doctorCheck {
	checks := make([]doctorCheck, 0, 2)

	switch info, err := os.Stat(cfg.VaultPath); {
	case err != nil:
		checks = append(checks, doctorCheck{"vault", false, err.Error()})
	case !info.IsDir():
		checks = append(checks, doctorCheck{"vault", false, cfg.VaultPath + " is not a directory"})
	default:
		checks = append(checks, doctorCheck{"vault", true, cfg.VaultPath})
	}

	notesDir := filepath.Join(cfg.VaultPath, "notes")
	switch info, err := os.Stat(notesDir); {
	case os.IsNotExist(err):
		checks = append(checks, doctorCheck{"notes dir", true, "not created yet"})
	case err != nil:
		checks = append(checks, doctorCheck{"notes dir", false, err.Error()})
	case !info.IsDir():
		checks = append(checks, doctorCheck{"notes dir", false, notesDir + " is not a directory"})
	default:
		checks = append(checks, doctorCheck{"notes dir", true, notesDir})
	}

	return checks
}

// appChecks wires the full application once so a broken index database
// or provider config surfaces as a check row instead of aborting doctor.
func appChecks(cfg config.Config) []doctorCheck {
	app, err := bootstrap.New(cfg, true)
	if err != nil {
		return []doctorCheck{{"index database", false, err.Error()}}
	}
	checks := []doctorCheck{{"index database", true, cfg.DBPath}}

	if cfg.AI.Provider == "" || cfg.AI.Provider == "none" {
		checks = append(checks, doctorCheck{"assist provider", true, "disabled"})
		return checks
	}
	provider, err := app.AssistCLI.Doctor(context.Background())
	if err != nil {
		return append(checks, doctorCheck{"assist provider", false, err.Error()})
	}
	for _, c := range provider {
		checks = append(checks, doctorCheck{"assist " + c.Target, c.OK, c.Detail})
	}
	return checks
}
