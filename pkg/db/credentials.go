package db

import (
	"bufio"
	"os"
	"strings"
)

// Credentials holds the registry database login read from db.properties.
type Credentials struct {
	Database string
	Username string
	Password string
}

func (c Credentials) Complete() bool {
	return c.Database != "" && c.Username != "" && c.Password != ""
}

// LoadCredentials reads a Java-properties style file and extracts the
// database, username and password keys. Unknown keys are ignored. A missing
// or unreadable file yields empty credentials, not an error; the caller
// decides how to report incomplete configuration.
func LoadCredentials(path string) Credentials {
	var creds Credentials

	f, err := os.Open(path)
	if err != nil {
		return creds
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch key {
		case "database":
			creds.Database = value
		case "username":
			creds.Username = value
		case "password":
			creds.Password = value
		}
	}

	return creds
}
