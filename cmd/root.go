/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gtdbfetch/gtdbfetch/internal/iofs"
	"github.com/gtdbfetch/gtdbfetch/internal/iologger"
	app "github.com/gtdbfetch/gtdbfetch/pkg"
	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config

	// persistent flag values, applied during bootstrap
	baseDirFlag string
	verboseFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "gtdbfetch",
	Short:   "Download genome assemblies of the Genome Taxonomy Database",
	Long: `gtdbfetch downloads genome assemblies of the Genome Taxonomy
Database (GTDB) selected by a taxon name or a full lineage path.

It fetches the assembly catalog of a release from a GTDB mirror,
resolves the taxon against it, downloads the matching genomes from
the NCBI assembly archive with aria2c (or wget as a fallback), and
arranges them in a browsable taxonomy tree of symbolic links over a
deduplicated content store, so an assembly shared between queries is
stored once.`,
	PersistentPreRunE: bootstrap,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureMirrorsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if baseDirFlag != "" {
		cfg.Update([]config.Option{config.OptBaseDir(baseDirFlag)})
	}

	// An unset base_dir puts catalogs and genomes under the data dir.
	if cfg.BaseDir == "" {
		cfg.Update([]config.Option{config.OptBaseDir(config.DataDir(homeDir))})
	}

	// Verbose mode keeps stdout for the transfer tool's own output:
	// logs move to stderr and drop to the debug level.
	if verboseFlag {
		cfg.Update([]config.Option{
			config.OptDownloadVerbose(true),
			config.OptLogLevel("debug"),
			config.OptLogDestination("stderr"),
		})
	}

	// Reconfigure logging with user's settings, appending to the log
	// started with the defaults above
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "gtdbfetch version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gtdbfetch")

	rootCmd.PersistentFlags().StringVar(
		&baseDirFlag, "base-dir", "",
		"root directory for catalogs and the genome content store",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verboseFlag, "verbose", "v", false,
		"debug logging, transfer tool output stays visible",
	)

	rootCmd.AddCommand(getDownloadCmd())
	rootCmd.AddCommand(getMetadataCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GTDBFETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// General configuration
	v.BindEnv("base_dir", "GTDBFETCH_BASE_DIR")
	v.BindEnv("mirror", "GTDBFETCH_MIRROR")
	v.BindEnv("dataset", "GTDBFETCH_DATASET")

	// Download configuration
	v.BindEnv("download.connections", "GTDBFETCH_DOWNLOAD_CONNECTIONS")

	// Log configuration
	v.BindEnv("log.level", "GTDBFETCH_LOG_LEVEL")
	v.BindEnv("log.format", "GTDBFETCH_LOG_FORMAT")
	v.BindEnv("log.destination", "GTDBFETCH_LOG_DESTINATION")

	v.AutomaticEnv()
}
