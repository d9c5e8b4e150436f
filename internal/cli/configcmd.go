package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dragbox/pkg/config"
)

// configCommand creates the config command for inspecting settings.
func (c *CLI) configCommand() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration dragbox runs with: the config file merged over the
built-in defaults. Redirect the output to create a starting config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				return c.printConfigPath()
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return config.Encode(os.Stdout, cfg)
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "print the config file location instead")
	return cmd
}

func (c *CLI) printConfigPath() error {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	status := StyleDim.Render("(not found, using defaults)")
	if _, err := os.Stat(path); err == nil {
		status = StyleSuccess.Render("(found)")
	}
	fmt.Println(StyleTitle.Render("Configuration"))
	printKeyValue("config", path+" "+status)
	return nil
}
