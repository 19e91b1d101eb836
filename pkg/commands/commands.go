package commands

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/logging"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// NewJournal is the root of the command that manages a journal and its
// version.
func NewJournal() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: options.Wrap80("Version journaling on the command line: create a journal, move its version and review its tasks."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addPersistentArgs(cmd)

	AddJournalCommands(cmd)
	return cmd
}

// NewJot is the root of the command that records and checks off tasks
// against the current version.
func NewJot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jot",
		Short: options.Wrap80("Jot down tasks for the current version of the journal and check them off."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addPersistentArgs(cmd)

	AddJotCommands(cmd)
	return cmd
}

func AddJournalCommands(topLevel *cobra.Command) {
	addInit(topLevel)
	addClear(topLevel)
	addDestroy(topLevel)
	addNext(topLevel)
	addRevert(topLevel)
	addStatus(topLevel)
	addTasks(topLevel)
	addUsage(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func AddJotCommands(topLevel *cobra.Command) {
	addTask(topLevel)
	addTaskList(topLevel)
	addCheck(topLevel)
	addUncheck(topLevel)
	addRemove(topLevel)
	addFinish(topLevel)
	addMove(topLevel)
	addDetail(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func addPersistentArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", logging.DefaultLevel,
		"Diagnostic log level on stderr. One of 'debug', 'info', 'warn' or 'error'.")
	_ = viper.BindPFlag(store.KeyLogLevel, cmd.PersistentFlags().Lookup("log-level"))
	cmd.PersistentFlags().String("log-format", logging.DefaultFormat,
		"Diagnostic log format. One of 'text', 'logfmt' or 'json'.")
	_ = viper.BindPFlag(store.KeyLogFormat, cmd.PersistentFlags().Lookup("log-format"))
}

// session is what a command needs to work on the journal.
type session struct {
	Config      store.Config
	Logger      *log.Logger
	Persistence store.Persistence
}

func load(cmd *cobra.Command) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Options{
		Prefix:    cmd.Root().Name(),
		Level:     cfg.LogLevel(),
		Formatter: cfg.LogFormat(),
	})

	p, err := store.Load(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("journal", "command", cmd.CommandPath(), "path", p.Path())
	return &session{Config: cfg, Logger: logger, Persistence: p}, nil
}

func (s *session) Clock() runner.Clock {
	return runner.Clock{Layout: s.Config.TimeFormat()}
}

func output(oo *options.OutputOptions) (runner.Output, error) {
	f, err := oo.Format()
	if err != nil {
		return runner.Output{}, err
	}
	return runner.Output{Format: f}, nil
}
