package main

import (
	"context"
	"log"
	"os"

	"screenpadctl/util"
)

func main() {
	cfgPath, err := util.ConfigPath()
	if err != nil {
		log.Fatalf("screenpadctl failed with errors:\n\n%v\n", err)
	}

	cfg, err := util.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("screenpadctl failed with errors:\n\n%v\n", err)
	}

	cmd := rootCommand(newController(), &cfg, cfgPath)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("screenpadctl failed with errors:\n\n%v\n", err)
	}
}
