package app

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/unmined/spinrewards/internal/config"
)

func (a *application) setupViper(path string) error {
	// Secrets may come from a local .env; real environment variables win
	if err := godotenv.Load(); err != nil {
		fmt.Println("[x] No .env file found, using environment variables")
	}

	// Get environment (default to development)
	env := config.GetEnvironment()

	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	viper.SetConfigType("yml")

	viper.AddConfigPath(path)

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvPrefix("SPIN_REWARDS")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	var c config.Config
	err = viper.Unmarshal(&c)
	if err != nil {
		return err
	}
	c.ApplyDefaults()
	a.config = &c

	fmt.Println("[x] Config loaded successfully")
	return nil
}
