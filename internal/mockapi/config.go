package mockapi

import (
	"go.uber.org/zap"

	"github.com/iliyamo/renttrack/internal/config"
	"github.com/iliyamo/renttrack/internal/jobs"
	"github.com/iliyamo/renttrack/internal/latency"
	"github.com/iliyamo/renttrack/internal/utils"
)

// OptionsFromConfig maps the environment onto facade options.  Store, KV
// and Publisher are left for the caller.
func OptionsFromConfig(cfg config.Config, log *zap.Logger) (Options, error) {
	tokens, err := utils.NewTokenizer(cfg.TokenScheme, cfg.JWTSecret, cfg.AccessTTL())
	if err != nil {
		return Options{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return Options{
		Latency:    latency.New(cfg.LatencyScale, cfg.LatencyJitter),
		Jobs:       jobs.NewScheduler(cfg.OCRMinDelay, cfg.OCRMaxDelay, log.Named("ocr")),
		Tokens:     tokens,
		Password:   cfg.DemoPassword,
		BcryptCost: cfg.BcryptCost,
		Logger:     log,
	}, nil
}
