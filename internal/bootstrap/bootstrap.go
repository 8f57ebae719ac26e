package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	assistinadapter "inkwell/internal/modules/assist/adapter/in"
	assistoutadapter "inkwell/internal/modules/assist/adapter/out"
	assistin "inkwell/internal/modules/assist/port/in"
	assistservice "inkwell/internal/modules/assist/service"
	assistusecase "inkwell/internal/modules/assist/usecase"
	editorinadapter "inkwell/internal/modules/editor/adapter/in"
	editoroutadapter "inkwell/internal/modules/editor/adapter/out"
	editorin "inkwell/internal/modules/editor/port/in"
	editorservice "inkwell/internal/modules/editor/service"
	editorusecase "inkwell/internal/modules/editor/usecase"
	exportinadapter "inkwell/internal/modules/export/adapter/in"
	exportoutadapter "inkwell/internal/modules/export/adapter/out"
	exportin "inkwell/internal/modules/export/port/in"
	exportservice "inkwell/internal/modules/export/service"
	exportusecase "inkwell/internal/modules/export/usecase"
	notesinadapter "inkwell/internal/modules/notes/adapter/in"
	notesoutadapter "inkwell/internal/modules/notes/adapter/out"
	notesin "inkwell/internal/modules/notes/port/in"
	notesservice "inkwell/internal/modules/notes/service"
	notesusecase "inkwell/internal/modules/notes/usecase"
	tagsinadapter "inkwell/internal/modules/tags/adapter/in"
	tagsoutadapter "inkwell/internal/modules/tags/adapter/out"
	tagsin "inkwell/internal/modules/tags/port/in"
	tagsservice "inkwell/internal/modules/tags/service"
	tagsusecase "inkwell/internal/modules/tags/usecase"
	todosinadapter "inkwell/internal/modules/todos/adapter/in"
	todosoutadapter "inkwell/internal/modules/todos/adapter/out"
	todosin "inkwell/internal/modules/todos/port/in"
	todosservice "inkwell/internal/modules/todos/service"
	todosusecase "inkwell/internal/modules/todos/usecase"
	"inkwell/internal/platform/clock"
	"inkwell/internal/platform/config"
	"inkwell/internal/platform/id"
	"inkwell/internal/platform/logging"
	uiapp "inkwell/internal/ui/app"
)

// App carries the wired use-cases for the TUI plus the thin CLI
// handlers the cobra commands call.
type App struct {
	Config config.Config
	Log    *zap.Logger

	NotesUC  notesin.Usecase
	TodosUC  todosin.Usecase
	TagsUC   tagsin.Usecase
	AssistUC assistin.Usecase
	ExportUC exportin.Usecase
	EditorUC editorin.Usecase

	NotesCLI  notesinadapter.CLIHandler
	TodosCLI  todosinadapter.CLIHandler
	TagsCLI   tagsinadapter.CLIHandler
	AssistCLI assistinadapter.CLIHandler
	ExportCLI exportinadapter.CLIHandler
	EditorCLI editorinadapter.CLIHandler
}

// New wires every module against the vault described by cfg. console
// mirrors warnings to stderr and is set on CLI paths only; the TUI owns
// the terminal.
func New(cfg config.Config, console bool) (*App, error) {
	log := logging.New(cfg.LogPath, console)
	clk := clock.SystemClock{}
	ids := id.UUID{}

	edgeProjector, err := tagsoutadapter.NewSQLiteEdgeProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new edge projector: %w", err)
	}
	tagsUC := tagsusecase.NewInteractor(tagsservice.NewTagService(
		tagsoutadapter.NewVaultTagStore(cfg.VaultPath),
		edgeProjector,
		nil,
	))

	noteIndex, err := notesoutadapter.NewSQLiteNoteIndex(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new note index: %w", err)
	}
	notesUC := notesusecase.NewInteractor(notesservice.NewNoteService(
		clk,
		ids,
		notesoutadapter.NewVaultNoteStore(cfg.VaultPath, log),
		noteIndex,
		notesoutadapter.NewOSFileReader(),
		notesoutadapter.NewLocalPDFExtractor(),
	), tagsUC)

	editorUC := editorusecase.NewInteractor(editorservice.NewEditorService(
		editoroutadapter.NewMemoryHistoryStore(),
		editoroutadapter.NewTimerScheduler(),
		editoroutadapter.NewNotesWriterAdapter(notesUC),
		0,
	))

	todosUC := todosusecase.NewInteractor(todosservice.NewTodoService(
		clk,
		ids,
		todosoutadapter.NewFileTodoStore(cfg.TodosPath),
	))

	transformer, err := assistoutadapter.NewTransformer(cfg)
	if err != nil {
		return nil, fmt.Errorf("new assist provider: %w", err)
	}
	assistUC := assistusecase.NewInteractor(assistservice.NewAssistService(transformer))

	exportUC := exportusecase.NewInteractor(exportservice.NewExportService(
		clk,
		exportoutadapter.NewOSSink(cfg.ExportsPath, log),
	), notesUC)

	return &App{
		Config:    cfg,
		Log:       log,
		NotesUC:   notesUC,
		TodosUC:   todosUC,
		TagsUC:    tagsUC,
		AssistUC:  assistUC,
		ExportUC:  exportUC,
		EditorUC:  editorUC,
		NotesCLI:  notesinadapter.NewCLIHandler(notesUC),
		TodosCLI:  todosinadapter.NewCLIHandler(todosUC),
		TagsCLI:   tagsinadapter.NewCLIHandler(tagsUC),
		AssistCLI: assistinadapter.NewCLIHandler(assistUC),
		ExportCLI: exportinadapter.NewCLIHandler(exportUC),
		EditorCLI: editorinadapter.NewCLIHandler(editorUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(
		app.Config,
		app.NotesUC,
		app.TodosUC,
		app.AssistUC,
		app.ExportUC,
		app.EditorUC,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
