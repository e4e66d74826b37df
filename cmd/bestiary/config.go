// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/bestiary/internal/dataset"
	"github.com/pdiddy/bestiary/internal/remote"
	"github.com/pdiddy/bestiary/internal/secrets"
	"github.com/pdiddy/bestiary/internal/session"
	"github.com/pdiddy/bestiary/pkg/types"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.path", dataset.DefaultPath)
	v.SetDefault("remote.base_url", "")
	v.SetDefault("remote.api_key", "")
	v.SetDefault("remote.timeout", 10*time.Second)
	v.SetDefault("remote.user_agent", "bestiary/"+version)
	v.SetDefault("remote.rate_limit", 1.0)
	v.SetDefault("remote.burst", 3)
	v.SetDefault("debug", false)
}

// loadConfig decodes the merged viper settings.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

// newSession loads the dataset and wires the remote client. A dataset that
// cannot be loaded is not fatal: the session starts with no local records
// and the returned notice explains why.
func newSession(cfg types.Config, opts ...session.Option) (*session.Session, *session.Notice) {
	local, err := dataset.LoadOrEmpty(cfg.Dataset.Path, logger)

	var startup *session.Notice
	if err != nil {
		n := session.ErrorNotice(err)
		startup = &n
	}

	rc := cfg.Remote
	rc.APIKey = secrets.APIKey(loadedSecrets, rc.APIKey)
	client := remote.NewClient(rc, remote.WithLogger(logger.Named("remote")))

	opts = append([]session.Option{
		session.WithLogger(logger.Named("session")),
		session.WithTimeout(rc.Timeout),
	}, opts...)

	logger.Debug("session ready",
		zap.String("dataset", cfg.Dataset.Path),
		zap.Int("local_records", len(local)),
		zap.Bool("api_key_set", rc.APIKey != ""))
	return session.New(local, client, opts...), startup
}
