package root

import (
	"context"

	"go.uber.org/zap"

	"stepquest/internal/ai"
	"stepquest/internal/config"
	"stepquest/internal/engine"
	"stepquest/internal/location"
	"stepquest/internal/storage"
)

// openService wires config, logging, storage, and the optional external
// clients into a loaded Service. The cleanup func flushes the logger and
// closes the database.
func openService(ctx context.Context) (*engine.Service, *config.Config, func(), error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := config.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, nil, err
		}
	}
	db, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = log.Sync()
		_ = db.Close()
	}

	opts := []engine.Option{engine.WithLogger(log)}

	var places engine.PlaceFinder
	if cfg.Kakao.APIKey != "" {
		kakaoOpts := []location.ClientOption{location.WithLogger(log)}
		if cfg.Kakao.BaseURL != "" {
			kakaoOpts = append(kakaoOpts, location.WithBaseURL(cfg.Kakao.BaseURL))
		}
		kc, err := location.NewClient(cfg.Kakao.APIKey, kakaoOpts...)
		if err != nil {
			cleanup()
			return nil, nil, nil, err
		}
		places = kc
	}
	opts = append(opts, engine.WithGenerator(engine.NewGenerator(nil, places, log)))

	var feedback engine.FeedbackClient
	if cfg.AI.APIKey != "" {
		gc, err := ai.NewGenAIClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Warn("ai client unavailable, using canned feedback", zap.Error(err))
		} else {
			feedback = gc
		}
	}
	if feedback == nil {
		feedback = ai.NewCanned(nil)
	}
	opts = append(opts, engine.WithFeedbackClient(feedback))

	svc := engine.NewService(db, opts...)
	if _, err := svc.Load(ctx); err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return svc, cfg, cleanup, nil
}
