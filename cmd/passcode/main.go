package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/angelmondragon/lotflow-backend/pkg/config"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
	"github.com/angelmondragon/lotflow-backend/pkg/security"
)

// passcode prints an Argon2id hash suitable for LOTFLOW_COMPANY_PASSCODE_HASH.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "passcode"})

	_ = godotenv.Load()

	value := flag.String("value", "", "passcode to hash; read from stdin when empty")
	flag.Parse()

	var params config.PasswordConfig
	if err := envconfig.Process(config.EnvPrefix, &params); err != nil {
		logg.Error(ctx, "failed to load password config", err)
		os.Exit(1)
	}

	plain := strings.TrimSpace(*value)
	if plain == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logg.Error(ctx, "failed to read passcode from stdin", err)
			os.Exit(1)
		}
		plain = strings.TrimSpace(line)
	}

	hash, err := security.HashPasscode(plain, params)
	if err != nil {
		logg.Error(ctx, "failed to hash passcode", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
