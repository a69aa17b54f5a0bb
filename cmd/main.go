package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotX12/netkit/internal/config"
	"github.com/dotX12/netkit/internal/domain"
	"github.com/dotX12/netkit/internal/logger"
	"github.com/dotX12/netkit/internal/service"
)

var (
	cfg        *config.Config
	configPath string
	logLevel   string
	output     string
	urls       []string
	strict     bool
	reqFile    string
	request    domain.ConfigurationRequest
	version    = "dev" // set at build time via -ldflags
)

func main() {
	log := logger.New()
	logger.SetGlobalLogger(log)

	rootCmd := &cobra.Command{
		Use:     "netkit",
		Short:   "IPv4 subnet calculator and switch port configuration linter",
		Long:    `Computes masks, network and broadcast addresses and usable ranges for IPv4 CIDR blocks, and previews switch port configurations while checking their addressing and VLAN settings.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			loader := config.NewLoader()
			if configPath != "" {
				cfg, err = loader.LoadWithPath(configPath)
			} else {
				cfg, err = loader.Load()
			}
			if err != nil {
				return err
			}

			// Explicit flags win over config file and environment
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
				cfg.Output = output
			}
			if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
				cfg.Strict = strict
			}

			logger.SetGlobalLogger(logger.NewWithOptions(logger.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
			}))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .netkit.yaml in /etc/netkit, $HOME or .)")

	subnetCmd := &cobra.Command{
		Use:   "subnet [CIDR...]",
		Short: "Compute subnet mask, network, broadcast and usable range",
		Long:  `Computes the derived values of each address/prefix argument (e.g. 192.168.1.0/24). With --urls, CIDR lists are downloaded and every IPv4 entry is computed.`,
		Run:   runSubnet,
	}
	subnetCmd.Flags().StringSliceVarP(&urls, "urls", "u", []string{}, "URLs of newline-separated CIDR lists")
	subnetCmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json)")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Preview a switch port configuration and check its fields",
		Long:  `Renders the switch configuration for a port and the static IP setup of the attached host, then reports whether every field is valid. The report is printed even when fields are invalid.`,
		Run:   runValidate,
	}
	validateCmd.Flags().StringVar(&reqFile, "file", "", "YAML file with port, mode, vlan, ip, subnet_mask and gateway")
	validateCmd.Flags().StringVar(&request.Port, "port", "", "Interface name, e.g. GigabitEthernet0/1")
	validateCmd.Flags().StringVar((*string)(&request.Mode), "mode", "", "Switchport mode (access, trunk)")
	validateCmd.Flags().IntVar(&request.VlanID, "vlan", 0, "VLAN ID (1-4094)")
	validateCmd.Flags().StringVar(&request.IP, "ip", "", "Host IPv4 address")
	validateCmd.Flags().StringVar(&request.SubnetMask, "mask", "", "Host subnet mask")
	validateCmd.Flags().StringVar(&request.Gateway, "gateway", "", "Default gateway")
	validateCmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 when the configuration is invalid")
	validateCmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json)")

	rootCmd.AddCommand(subnetCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSubnet(cmd *cobra.Command, args []string) {
	log := logger.Global()

	format, err := service.ParseOutputFormat(cfg.Output)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid output format")
	}

	var downloaded []string
	if len(urls) > 0 {
		downloader := service.NewDownloader(log.Logger, cfg.Timeout())
		list, err := downloader.Download(urls)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to download CIDR lists")
		}
		if list.IPv6Count() > 0 {
			log.Warn().Int("ipv6_count", list.IPv6Count()).Msg("IPv6 entries are not supported, skipping")
		}
		downloaded = list.IPv4
	}

	calc := service.NewSubnetCalculator(log.Logger)
	code, err := computeSubnets(calc, os.Stdout, args, downloaded, len(urls) > 0, format)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to compute subnets")
	}
	if code != 0 {
		os.Exit(code)
	}
}

func runValidate(cmd *cobra.Command, args []string) {
	log := logger.Global()

	format, err := service.ParseOutputFormat(cfg.Output)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid output format")
	}

	req := request
	if reqFile != "" {
		fromFile, err := service.LoadRequest(reqFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load request")
		}
		req = mergeRequest(fromFile, request, cmd.Flags().Changed)
	}

	validator := service.NewConfigValidator(log.Logger)
	code, err := lintRequest(validator, log.Logger, os.Stdout, req, format, cfg.Strict)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to validate configuration")
	}
	if code != 0 {
		os.Exit(code)
	}
}
