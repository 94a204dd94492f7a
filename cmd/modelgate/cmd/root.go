/*
 *     Copyright 2023 The modelgate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/modelgate/modelgate/config"
	"github.com/modelgate/modelgate/internal/mglog"
	"github.com/modelgate/modelgate/server"
)

const (
	// modelgateEnvPrefix is the default environment prefix for Viper.
	// Both BindEnv and AutomaticEnv will use this prefix.
	modelgateEnvPrefix = "modelgate"
)

var (
	cfgFile string
	// Initialize default config
	cfg = config.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "modelgate",
	Short: "versioned model serving gateway",
	Long: `modelgate is a long-running process that registers versioned model
instances, tracks their lifecycle status, routes prediction requests to
active versions and runs A/B tests between competing versions.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mglog.Init(cfg.Console, cfg.LogDir); err != nil {
			return errors.Wrap(err, "init logger")
		}
		if cfg.Verbose {
			mglog.SetLevel(zapcore.DebugLevel)
		}

		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "validate config")
		}
		return runServer()
	},
}

func init() {
	// Initialize cobra
	cobra.OnInitialize(initConfig)

	// Add flags
	flagSet := rootCmd.Flags()
	flagSet.BoolVar(&cfg.Console, "console", cfg.Console, "write log to console as well as files")
	flagSet.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print verbose log and enable golang debug info")
	flagSet.IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "port that the rest server listens on")
	flagSet.StringVar(&cfgFile, "config", "", "the path of configuration file")
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(filepath.Dir(config.DefaultConfigPath))
		viper.SetConfigName("modelgate")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(modelgateEnvPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		mglog.Infof("using config file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal config
	if err := viper.Unmarshal(&cfg); err != nil {
		mglog.Fatalf("cannot unmarshal config: %+v", err)
	}
}

func runServer() error {
	// Config values
	s, _ := yaml.Marshal(cfg)
	mglog.Infof("modelgate configuration:\n%s", string(s))

	svr, err := server.New(cfg)
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		mglog.Infof("received signal %s, stopping", sig)
		svr.Stop()
	}()

	return svr.Serve()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		mglog.Error(err)
		os.Exit(1)
	}
}
