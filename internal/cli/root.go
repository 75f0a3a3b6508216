package cli

import (
	"context"
	"os"
	"time"

	"smt_scheduler/internal/bootstrap"
	"smt_scheduler/internal/config"
	"smt_scheduler/internal/domain/scheduling"
	"smt_scheduler/internal/infrastructure/logging"
	"smt_scheduler/internal/usecase"
	"smt_scheduler/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

// Env is what the commands need from the wired application.
type Env struct {
	WorkOrders       interfaces.IWorkOrderRepository
	Lines            interfaces.IProductionLineRepository
	AutoSchedule     usecase.IAutoScheduleUseCase
	WorkOrderUseCase usecase.IWorkOrderUseCase
	Location         *time.Location
	Clock            scheduling.Clock
	Close            func() error
}

// EnvFactory connects the stores for one command invocation.
type EnvFactory func(ctx context.Context) (*Env, error)

func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, openEnv)
}

func newRootCmd(version string, open EnvFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scheduler",
		Short:        "SMT production-line auto-scheduler",
		SilenceUsage: true,
	}

	cmd.AddCommand(newRunCmd(open))
	cmd.AddCommand(newExportCmd(open))
	cmd.AddCommand(newImportCmd(open))
	cmd.AddCommand(newLinesCmd(open))
	cmd.AddCommand(newMigrateCmd())

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetVersionTemplate("{{.Version}}\n")
	if version != "" {
		cmd.Version = version
	} else {
		cmd.Version = "dev"
	}
	return cmd
}

// openEnv wires the same container as the API; logs go to stderr so
// stdout stays machine readable.
func openEnv(ctx context.Context) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logCfg := logging.DefaultConfig("smt-scheduler-cli")
	logCfg.Level = logging.LogLevel(cfg.LogLevel)
	logCfg.Environment = cfg.Environment
	logCfg.Output = os.Stderr
	logger := logging.New(logCfg)

	c, err := bootstrap.New(ctx, cfg, logger, nil)
	if err != nil {
		return nil, err
	}
	return &Env{
		WorkOrders:       c.WorkOrders,
		Lines:            c.Lines,
		AutoSchedule:     c.AutoSchedule,
		WorkOrderUseCase: c.WorkOrder,
		Location:         c.Location,
		Clock:            scheduling.SystemClock{},
		Close:            c.Close,
	}, nil
}

func withEnv(cmd *cobra.Command, open EnvFactory, fn func(*Env) error) error {
	env, err := open(cmd.Context())
	if err != nil {
		return err
	}
	if env.Close != nil {
		defer env.Close()
	}
	if env.Location == nil {
		env.Location = time.UTC
	}
	if env.Clock == nil {
		env.Clock = scheduling.SystemClock{}
	}
	if env.WorkOrderUseCase == nil {
		env.WorkOrderUseCase = usecase.NewWorkOrderUseCase(env.WorkOrders, nil)
	}
	return fn(env)
}
