package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	configDir      = ".litetable"
	configFileName = "bigtable.conf"

	defaultProject     = "emulator"
	defaultInstance    = "local"
	defaultAddress     = "127.0.0.1"
	defaultPort        = 8086
	defaultStopTimeout = 5 * time.Second
)

// Config holds the settings of the emulator command.
type Config struct {
	Project  string
	Instance string
	Address  string
	Port     int
	// Tables maps table IDs to the column families created with them.
	Tables      map[string][]string
	Debug       bool
	StopTimeout time.Duration
}

func defaults() *Config {
	return &Config{
		Project:     defaultProject,
		Instance:    defaultInstance,
		Address:     defaultAddress,
		Port:        defaultPort,
		Tables:      map[string][]string{},
		StopTimeout: defaultStopTimeout,
	}
}

// NewConfig reads ~/.litetable/bigtable.conf. A missing file yields the
// defaults.
func NewConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, configDir, configFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return defaults(), nil
	}
	return Load(configPath)
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return parse(file)
}

func parse(r io.Reader) (*Config, error) {
	config := defaults()
	scanner := bufio.NewScanner(r)

	var err error
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "project":
			config.Project = value
		case "instance":
			config.Instance = value
		case "address":
			config.Address = value
		case "port":
			config.Port, err = strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid port value: %w", err)
			}
		case "tables":
			config.Tables, err = parseTables(value)
			if err != nil {
				return nil, fmt.Errorf("invalid tables value: %w", err)
			}
		case "debug":
			config.Debug = value == "true"
		case "stop_timeout":
			config.StopTimeout, err = time.ParseDuration(value)
			if err != nil {
				return nil, fmt.Errorf("invalid stop timeout value: %w", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return config, nil
}

// parseTables reads "table1:fam1,fam2;table2:fam3".
func parseTables(value string) (map[string][]string, error) {
	tables := map[string][]string{}
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		table, families, _ := strings.Cut(entry, ":")
		table = strings.TrimSpace(table)
		if table == "" {
			return nil, fmt.Errorf("table name missing in %q", entry)
		}

		var fams []string
		for _, fam := range strings.Split(families, ",") {
			if fam = strings.TrimSpace(fam); fam != "" {
				fams = append(fams, fam)
			}
		}
		tables[table] = append(tables[table], fams...)
	}
	return tables, nil
}
