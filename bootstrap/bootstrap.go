package bootstrap

import (
	"BitKV/internal/application/service"
	"BitKV/internal/domain"
	"BitKV/internal/platform/client"
	"BitKV/internal/platform/config"
	"BitKV/internal/platform/messaging"
	"BitKV/internal/platform/messaging/zeromq/publisher"
	"BitKV/internal/platform/repository"
	"BitKV/internal/platform/repository/bitcask"
	"BitKV/internal/platform/server"
	"BitKV/internal/platform/server/handler/admin"
	"BitKV/internal/platform/server/handler/dbentry"
	"go.uber.org/dig"
)

func Run() (bool, error) {
	container := dig.New()
	serviceConstructors := []interface{}{
		config.LoadConfig,
		engine,
		recordRepository,
		changeBroadcaster,
		mergeReportSink,
		service.NewSaveEntryService,
		service.NewGetEntryService,
		service.NewDeleteEntryService,
		service.NewMergeSegmentsService,
		service.NewListKeysService,
		dbentry.NewDbEntryHandler,
		admin.NewAdminHandler,
		server.NewServer,
	}
	for _, service := range serviceConstructors {
		if err := container.Provide(service); err != nil {
			return false, err
		}
	}
	err := container.Invoke(func(s server.Server, e *bitcask.Engine) {
		defer e.Close()
		s.Run()
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func engine(cfg config.Config) (*bitcask.Engine, error) {
	return bitcask.Open(cfg.DataDirectory, cfg.SegmentSizeLimit)
}

func recordRepository(e *bitcask.Engine) domain.RecordRepository {
	return repository.NewBitcaskRepository(e)
}

func changeBroadcaster(cfg config.Config) (domain.ChangeBroadcaster, error) {
	if cfg.ChangeFeedAddress == "" {
		return messaging.NewNoopBroadcaster(), nil
	}
	return publisher.NewZeroMQChangeFeedPublisher(cfg.ChangeFeedAddress)
}

func mergeReportSink(cfg config.Config) domain.MergeReportSink {
	return client.NewMonitorClient(cfg.MonitorUrl)
}
