// Package scheduler contém o agendamento do reaquecimento das visões do dashboard
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/usecases/analyzing"
	"github.com/vfg2006/backoffice-api/pkg/utils"
)

type SnapshotRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// SnapshotRefreshService reaquece periodicamente o cache das visões
// analíticas, para que as requisições do dashboard encontrem os dados já
// calculados mesmo depois de longos períodos sem tráfego
type SnapshotRefreshService struct {
	scheduler          *gocron.Scheduler
	analyzerService    analyzing.Analyzer
	config             SnapshotRefreshConfig
	storeTimeout       time.Duration
	refreshRunning     bool
	refreshMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewSnapshotRefreshService(analyzerService analyzing.Analyzer, cfg *config.Config) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule: cfg.SnapshotRefresh.CronSchedule, // Default: a cada 10 minutos
		Enabled:      cfg.SnapshotRefresh.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de reaquecimento das visões carregada")

	return &SnapshotRefreshService{
		scheduler:       scheduler,
		analyzerService: analyzerService,
		config:          refreshConfig,
		storeTimeout:    time.Duration(cfg.Store.TimeoutSeconds) * time.Second,
	}
}

func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de reaquecimento das visões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de reaquecimento das visões do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro no reaquecimento das visões do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reaquecimento das visões: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de reaquecimento das visões")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshSnapshots roda uma passada de reaquecimento. Execuções
// sobrepostas são descartadas: se uma passada ainda está em andamento,
// a nova é ignorada com aviso no log.
func (s *SnapshotRefreshService) RefreshSnapshots() error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Warn("Reaquecimento das visões já está em execução")
		return nil
	}
	s.refreshRunning = true
	s.lastRunStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRunCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	runID, _ := utils.GenerateID()
	started := time.Now()

	logrus.WithField("run_id", runID).Info("Iniciando reaquecimento das visões do dashboard")

	ctx, cancel := context.WithTimeout(context.Background(), s.storeTimeout)
	defer cancel()

	if err := s.analyzerService.RefreshSnapshots(ctx); err != nil {
		logrus.WithError(err).WithField("run_id", runID).Error("Reaquecimento das visões terminou com falha parcial")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": time.Since(started).String(),
	}).Info("Reaquecimento das visões concluído")

	return nil
}

// TriggerManualRefresh dispara uma passada de reaquecimento fora do
// agendamento, sem bloquear o chamador
func (s *SnapshotRefreshService) TriggerManualRefresh() {
	go func() {
		if err := s.RefreshSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro no reaquecimento manual das visões")
		}
	}()
}

// GetStatus retorna o estado atual da cron de reaquecimento
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.refreshRunning,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt.Format(time.RFC3339)
	}
	if !s.lastRunCompletedAt.IsZero() {
		status["last_run_completed_at"] = s.lastRunCompletedAt.Format(time.RFC3339)
	}

	return status
}
