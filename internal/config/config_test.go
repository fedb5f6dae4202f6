package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var c Config
	c.ApplyDefaults()

	assert.Equal(t, "8080", c.Server.Port)
	assert.Equal(t, StorageDriverMemory, c.Storage.Driver)
	assert.Equal(t, DefaultBackdoorUser, c.Rewards.BackdoorUser)
	assert.Equal(t, int64(DefaultBackdoorAmount), c.Rewards.BackdoorAmount)
	assert.Equal(t, DefaultSavedMax, c.Rewards.SavedMax)
	assert.Equal(t, 2400*time.Millisecond, c.Rewards.SpinRevealDelay)
	assert.Equal(t, ":8080", c.GetServerAddress())
}

func TestApplyDefaultsKeepsValues(t *testing.T) {
	c := Config{
		Server:  ServerConfig{Host: "127.0.0.1", Port: "9000"},
		Rewards: RewardsConfig{MaxBatch: 3, XRPPerSpin: "0.5"},
	}
	c.ApplyDefaults()

	assert.Equal(t, "127.0.0.1:9000", c.GetServerAddress())
	assert.Equal(t, 3, c.Rewards.MaxBatch)
	assert.Equal(t, "0.5", c.Rewards.XRPPerSpin)
}
