package jobs

import (
	"context"
	"time"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultStatusReportSchedule is used when no schedule is configured.
const DefaultStatusReportSchedule = "@every 1m"

const reportTimeout = 10 * time.Second

// OrderStatusReportJob periodically logs how many orders sit in each status.
type OrderStatusReportJob struct {
	handler  queries.GetOrderStatusSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewOrderStatusReportJob creates the job. schedule accepts standard five-field cron
// expressions and descriptors such as "@every 30s"; empty selects DefaultStatusReportSchedule.
func NewOrderStatusReportJob(
	handler queries.GetOrderStatusSummaryQueryHandler,
	schedule string,
	logger *zap.Logger,
) *OrderStatusReportJob {
	if schedule == "" {
		schedule = DefaultStatusReportSchedule
	}

	logger = logger.Named("order_status_report_job")
	cronLog := cronLogger{logger.Sugar()}

	return &OrderStatusReportJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger: logger,
	}
}

// Start schedules the report and starts the scheduler.
func (j *OrderStatusReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order status report job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OrderStatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("order status report job stopped")
}

func (j *OrderStatusReportJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	if err := j.Report(ctx); err != nil {
		j.logger.Error("order status report failed", zap.Error(err))
	}
}

// Report logs a single summary line with one field per status.
func (j *OrderStatusReportJob) Report(ctx context.Context) error {
	summary, err := j.handler.Handle(ctx, queries.NewGetOrderStatusSummaryQuery())
	if err != nil {
		return err
	}

	fields := make([]zap.Field, 0, len(summary)+1)
	var total int64
	for _, sc := range summary {
		fields = append(fields, zap.Int64(sc.Status.String(), sc.Count))
		total += sc.Count
	}
	fields = append(fields, zap.Int64("total", total))

	j.logger.Info("order status report", fields...)
	return nil
}

// cronLogger routes the scheduler's own messages through zap.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
