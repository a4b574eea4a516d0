package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env into the process environment. The -port flag wins over
// PORT so local runs can pick a free port without editing the file.
func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
