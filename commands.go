package main

import (
	"context"
	"fmt"
	"strconv"

	"screenpadctl/util"

	"github.com/urfave/cli/v3"
)

func rootCommand(ctrl Controller, cfg *util.Config, cfgPath string) *cli.Command {
	return &cli.Command{
		Name:  "screenpadctl",
		Usage: "Control the screenpad brightness and power state",
		Commands: []*cli.Command{
			cmdBrightness(ctrl),
			cmdUp(ctrl, cfg),
			cmdDown(ctrl, cfg),
			cmdConfig(cfg, cfgPath),
			cmdSet(ctrl),
			cmdOn(ctrl),
			cmdOff(ctrl),
			cmdToggle(ctrl),
			cmdDim(ctrl),
			cmdCycle(ctrl),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Present() {
				printError("Invalid Argument\nUse `help` command")
				return nil
			}
			printError("Specify argument\nuse `help` for usage details")
			return nil
		},
		CommandNotFound: func(ctx context.Context, c *cli.Command, name string) {
			printError("Invalid Argument\nUse `help` command")
		},
	}
}

func cmdBrightness(ctrl Controller) *cli.Command {
	return &cli.Command{
		Name:  "b",
		Usage: "Print the current brightness",
		Action: func(ctx context.Context, c *cli.Command) error {
			curr, err := ctrl.Brightness()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Current Brightness is %d\n", curr)
			return nil
		},
	}
}

func cmdUp(ctrl Controller, cfg *util.Config) *cli.Command {
	return &cli.Command{
		Name:  "bup",
		Usage: "Raise the brightness by the configured positive increment",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := ctrl.Increment(cfg.PositiveIncrement); err != nil {
				return err
			}
			printSuccess("Brightness up")
			return nil
		},
	}
}

func cmdDown(ctrl Controller, cfg *util.Config) *cli.Command {
	return &cli.Command{
		Name:  "bdown",
		Usage: "Lower the brightness by the configured negative increment",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := ctrl.Increment(cfg.NegativeIncrement); err != nil {
				return err
			}
			printSuccess("Brightness down")
			return nil
		},
	}
}

func cmdConfig(cfg *util.Config, cfgPath string) *cli.Command {
	return &cli.Command{
		Name:      "bconfig",
		Usage:     "Set and persist a brightness increment",
		ArgsUsage: "[pos/neg] <value>",
		// Negative increment values would otherwise be parsed as flags.
		SkipFlagParsing: true,
		Action: func(ctx context.Context, c *cli.Command) error {
			args := c.Args()
			if args.Len() < 1 {
				printError("Specify which increment value to change. Use [pos/neg] <value>")
				return nil
			}
			if args.Len() < 2 {
				printError("Specify increment value")
				return nil
			}

			v, err := strconv.ParseInt(args.Get(1), 10, 16)
			if err != nil {
				return fmt.Errorf("cannot convert %q to int: %w", args.Get(1), err)
			}

			operation := args.Get(0)
			switch operation {
			case "pos":
				cfg.PositiveIncrement = int16(v)
			case "neg":
				cfg.NegativeIncrement = int16(v)
			default:
				printError("Enter valid increment value to change")
				return nil
			}

			util.StoreConfig(cfgPath, *cfg) // best-effort
			printSuccess(fmt.Sprintf("Set %s increment to %d", operation, v))
			return nil
		},
	}
}

func cmdSet(ctrl Controller) *cli.Command {
	return &cli.Command{
		Name:            "bset",
		Usage:           "Set the brightness directly",
		ArgsUsage:       "<int in [0->255] inclusive>",
		SkipFlagParsing: true,
		Action: func(ctx context.Context, c *cli.Command) error {
			if !c.Args().Present() {
				printError("Specify int between [0->255] inclusive to set the brightness manually")
				return nil
			}

			v, err := strconv.ParseInt(c.Args().First(), 10, 16)
			if err != nil {
				printError("Enter a valid int between [0->255] inclusive")
				return nil
			}
			if v < 0 || v > 255 {
				printError("Int out of range. Brightness is between [0->255] inclusive")
				return nil
			}

			if err := ctrl.Overwrite(int16(v)); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Set brightness to %d", v))
			return nil
		},
	}
}

func cmdOn(ctrl Controller) *cli.Command {
	return &cli.Command{
		Name:  "on",
		Usage: "Restore the brightness saved when the screen last left the on state",
		Action: func(ctx context.Context, c *cli.Command) error {
			state, err := ctrl.State()
			if err != nil {
				return err
			}
			if state == StateOn {
				printError("Screen is already on")
				return nil
			}

			prev, err := ctrl.Restore()
			if err != nil {
				return err
			}
			if err := ctrl.Overwrite(prev); err != nil {
				return err
			}
			printSuccess("Screen on")
			return nil
		},
	}
}

func cmdOff(ctrl Controller) *cli.Command {
	return &cli.Command{
		Name:  "off",
		Usage: "Back up the current brightness and turn the screen off",
		Action: func(ctx context.Context, c *cli.Command) error {
			state, err := ctrl.State()
			if err != nil {
				return err
			}
			if state == StateOff {
				printError("Screen is already off")
				return nil
			}

			if err := ctrl.Backup(); err != nil {
				return err
			}
			if err := ctrl.Overwrite(0); err != nil {
				return err
			}
			printSuccess("Screen off")
			return nil
		},
	}
}

func cmdToggle(ctrl Controller) *cli.Command {
	return &cli.Command{
		Name:  "toggle",
		Usage: "Flip the screen between on and off",
		Action: func(ctx context.Context, c *cli.Command) error {
			state, err := ctrl.State()
			if err != nil {
				return err
			}

			// A dimmed screen is neither on nor off here and falls
			// through without action or message.
			switch state {
			case StateOn:
				if err := ctrl.Backup(); err != nil {
					return err
				}
				if err := ctrl.Overwrite(0); err != nil {
					return err
				}
				printSuccess("Toggle screen off")
			case StateOff:
				prev, err := ctrl.Restore()
				if err != nil {
					return err
				}
				if err := ctrl.Overwrite(prev); err != nil {
					return err
				}
				printSuccess("Toggle screen on")
			}
			return nil
		},
	}
}

func cmdDim(ctrl Controller) *cli.Command {
	return &cli.Command{
		Name:  "dim",
		Usage: "Dim the screen, saving the current brightness when it was on",
		Action: func(ctx context.Context, c *cli.Command) error {
			state, err := ctrl.State()
			if err != nil {
				return err
			}
			if state == StateDim {
				return nil
			}

			// Dimming an off screen does not back up, so the
			// brightness that preceded the off is lost.
			if state == StateOn {
				if err := ctrl.Backup(); err != nil {
					return err
				}
			}

			if err := ctrl.Overwrite(1); err != nil {
				return err
			}
			printSuccess("Dim Screen")
			return nil
		},
	}
}

func cmdCycle(ctrl Controller) *cli.Command {
	return &cli.Command{
		Name:  "cycle",
		Usage: "Advance the screen through on -> dim -> off (loops)",
		Action: func(ctx context.Context, c *cli.Command) error {
			state, err := ctrl.State()
			if err != nil {
				return err
			}

			switch state {
			case StateOn:
				if err := ctrl.Backup(); err != nil {
					return err
				}
				if err := ctrl.Overwrite(1); err != nil {
					return err
				}
				printSuccess("Cycle on -> dim")
			case StateDim:
				if err := ctrl.Overwrite(0); err != nil {
					return err
				}
				printSuccess("Cycle dim -> off")
			case StateOff:
				prev, err := ctrl.Restore()
				if err != nil {
					return err
				}
				if err := ctrl.Overwrite(prev); err != nil {
					return err
				}
				printSuccess("Cycle off -> on")
			}
			return nil
		},
	}
}
