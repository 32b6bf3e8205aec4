// Package services holds the aggregation passes that run over a loaded
// snapshot.
package services

import (
	"github.com/solana-pools/stake-aggregator/internal/config"
)

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
	}
}
