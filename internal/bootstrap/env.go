package bootstrap

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
)

// Loadenv loads variables from the given files (".env" when none are given)
// without overriding anything already set in the environment. A missing file
// is not an error.
func Loadenv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("No .env file found, using system environment variables")
			return
		}
		log.Printf("Failed to read .env file: %v", err)
	}
}
