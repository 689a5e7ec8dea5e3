package main

import (
	"fmt"
	"os"
	"strconv"

	"screenpadctl/util"
)

// ScreenState is derived from the brightness value alone and never
// stored: 0 is Off, 1 is Dim, anything else is On. A custom brightness
// of 1 is therefore indistinguishable from a dimmed screen.
type ScreenState int

const (
	StateOn ScreenState = iota
	StateOff
	StateDim
)

const (
	ctrlFile = "/sys/class/leds/asus::screenpad/brightness"
	// The tilde is kept literal, matching the path the tool has always
	// written to. TODO: expand against $HOME once existing backups can
	// be migrated.
	backupFile = "~/.local/share/brightness_backup"
)

// Controller reads and rewrites the brightness control file and keeps a
// one-slot backup of the brightness seen before the screen last left
// the On state. Paths are plain fields so tests can point them at
// temporary files.
type Controller struct {
	CtrlPath   string
	BackupPath string
}

func newController() Controller {
	return Controller{CtrlPath: ctrlFile, BackupPath: backupFile}
}

// Brightness reads the current value from the control file.
func (c Controller) Brightness() (int16, error) {
	v, err := util.ReadInt16(c.CtrlPath)
	if err != nil {
		return 0, fmt.Errorf("cannot read control file: %w", err)
	}
	return v, nil
}

// Overwrite replaces the control file content with value, written as
// decimal text. No bounds check happens here: callers keep value inside
// [0,255].
func (c Controller) Overwrite(value int16) error {
	if err := os.WriteFile(c.CtrlPath, []byte(strconv.Itoa(int(value))), 0644); err != nil {
		return fmt.Errorf("cannot write new value to control file: %w", err)
	}
	return nil
}

// Increment adds delta to the current brightness and writes the result
// only when it stays inside [0,255]. An out-of-range result leaves the
// file untouched instead of saturating.
func (c Controller) Increment(delta int16) error {
	curr, err := c.Brightness()
	if err != nil {
		return err
	}

	next := curr + delta
	if next < 0 || next > 255 {
		return nil
	}
	return c.Overwrite(next)
}

// Backup saves the current brightness to the backup file, creating it
// if absent and unconditionally overwriting any prior backup.
func (c Controller) Backup() error {
	curr, err := c.Brightness()
	if err != nil {
		return err
	}

	ex, err := util.PathExists(c.BackupPath)
	if err != nil {
		return fmt.Errorf("cannot stat backup file: %w", err)
	}
	if !ex {
		f, err := os.Create(c.BackupPath)
		if err != nil {
			return fmt.Errorf("cannot create backup file: %w", err)
		}
		f.Close()
	}

	if err := os.WriteFile(c.BackupPath, []byte(strconv.Itoa(int(curr))), 0644); err != nil {
		return fmt.Errorf("cannot write to backup file: %w", err)
	}
	return nil
}

// Restore returns the backed-up brightness. A missing backup, such as
// an `on` before any `off` has ever run, is an error.
func (c Controller) Restore() (int16, error) {
	v, err := util.ReadInt16(c.BackupPath)
	if err != nil {
		return 0, fmt.Errorf("cannot read backup file: %w", err)
	}
	return v, nil
}

// State derives the screen state from the current brightness.
func (c Controller) State() (ScreenState, error) {
	curr, err := c.Brightness()
	if err != nil {
		return StateOn, err
	}
	return stateOf(curr), nil
}

func stateOf(brightness int16) ScreenState {
	switch brightness {
	case 0:
		return StateOff
	case 1:
		return StateDim
	default:
		return StateOn
	}
}
