package services

import (
	"soundbridge/domain"
	"soundbridge/observability"
	"soundbridge/repositories"
)

type IStatsService interface {
	Overview() (StatsOverview, error)
}

// StatsOverview is the admin dashboard payload: catalog totals plus
// live process health.
type StatsOverview struct {
	domain.CatalogStats
	Process observability.ProcessStats `json:"process"`
}

type StatsService struct {
	catalog repositories.ICatalogRepository
	users   repositories.IUserRepository
	monitor *observability.Monitor
}

func NewStatsService(catalog repositories.ICatalogRepository,
	users repositories.IUserRepository, monitor *observability.Monitor) *StatsService {
	return &StatsService{catalog: catalog, users: users, monitor: monitor}
}

func (s *StatsService) Overview() (StatsOverview, error) {
	stats, err := s.catalog.Stats()
	if err != nil {
		return StatsOverview{}, err
	}
	stats.TotalUsers, err = s.users.Count()
	if err != nil {
		return StatsOverview{}, err
	}
	proc, err := s.monitor.Snapshot()
	if err != nil {
		return StatsOverview{}, err
	}
	return StatsOverview{CatalogStats: stats, Process: proc}, nil
}
