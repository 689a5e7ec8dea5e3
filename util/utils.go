// Package util contains the config store and file helpers used by the
// screenpadctl commands.
package util

import (
	"bufio"
	"errors"
	"os"
	"strconv"
)

// ReadInt16 reads the first whitespace-delimited token of the file at
// pth and parses it as a decimal integer. Sysfs values end with a
// newline, which the word scan strips.
func ReadInt16(pth string) (int16, error) {
	f, err := os.Open(pth)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	scanner.Scan()

	v, err := strconv.ParseInt(scanner.Text(), 10, 16)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

func PathExists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		} else {
			return false, err
		}
	}
	return true, nil
}
