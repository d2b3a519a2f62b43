package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~spc/go-log"
	"github.com/urfave/cli/v2"

	"github.com/oneloginaws/onelogin-aws/internal/config"
	"github.com/oneloginaws/onelogin-aws/internal/userquery"
)

const configFileName = ".onelogin-aws.config"

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Debugf("cannot determine home directory: %v", err)
		return configFileName
	}
	return filepath.Join(home, configFileName)
}

// parseOverrides turns repeated key=value flags into an override map.
func parseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid override %q: want key=value", pair)
		}
		overrides[key] = value
	}
	return overrides, nil
}

func main() {
	app := cli.NewApp()
	app.Name = "onelogin-aws"
	app.Usage = "manage configuration profiles for logging in to AWS through OneLogin"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   defaultConfigPath(),
			Usage:   "read and write configuration from `FILE`",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "error",
			Usage: "set the logging output `LEVEL`",
		},
	}
	app.Before = func(c *cli.Context) error {
		level, err := log.ParseLevel(c.String("log-level"))
		if err != nil {
			return cli.Exit(err, 1)
		}
		log.SetLevel(level)
		log.SetFlags(0)
		log.SetPrefix(fmt.Sprintf("[%v] ", app.Name))
		return nil
	}

	configNameFlag := &cli.StringFlag{
		Name:    "config-name",
		Aliases: []string{"C"},
		Usage:   "operate on the `PROFILE` section instead of the defaults",
	}

	app.Commands = []*cli.Command{
		{
			Name:  "configure",
			Usage: "interactively set up a configuration profile",
			Flags: []cli.Flag{configNameFlag},
			Action: func(c *cli.Context) error {
				cfg, err := config.Open(c.String("config"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				if err := cfg.Initialise(userquery.Stdio(), c.String("config-name")); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:  "profiles",
			Usage: "list configured profile sections",
			Action: func(c *cli.Context) error {
				cfg, err := config.Open(c.String("config"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				if !cfg.IsInitialised() {
					fmt.Printf("No configuration found. Run '%v configure' first.\n", app.Name)
					return nil
				}
				for _, name := range cfg.Sections() {
					fmt.Println(name)
				}
				return nil
			},
		},
		{
			Name:      "get",
			Usage:     "print one value from a profile section",
			ArgsUsage: "KEY",
			Flags: []cli.Flag{
				configNameFlag,
				&cli.StringSliceFlag{
					Name:    "override",
					Aliases: []string{"o"},
					Usage:   "shadow a stored value with `KEY=VALUE` for this invocation",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					cli.ShowSubcommandHelp(c)
					return cli.Exit("expected exactly one KEY argument", 1)
				}
				cfg, err := config.Open(c.String("config"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				overrides, err := parseOverrides(c.StringSlice("override"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				section := cfg.Section(c.String("config-name"))
				section.SetOverrides(overrides)
				value, err := section.Get(c.Args().Get(0))
				if err != nil {
					return cli.Exit(err, 1)
				}
				fmt.Println(value)
				return nil
			},
		},
		{
			Name:      "set",
			Usage:     "store one value in a profile section",
			ArgsUsage: "KEY VALUE",
			Flags:     []cli.Flag{configNameFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					cli.ShowSubcommandHelp(c)
					return cli.Exit("expected KEY and VALUE arguments", 1)
				}
				cfg, err := config.Open(c.String("config"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				section := cfg.Section(c.String("config-name"))
				section.Set(c.Args().Get(0), c.Args().Get(1))
				if err := cfg.SaveFile(); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
